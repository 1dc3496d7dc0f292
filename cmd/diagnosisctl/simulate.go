package main

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"coachdiag/internal/config"
	"coachdiag/internal/diagnosis"
	"coachdiag/internal/logger"
	"coachdiag/internal/model"
	"coachdiag/internal/repository"
	"coachdiag/internal/service"
)

func newSimulateCmd() *cobra.Command {
	var (
		answers string
		times   string
		userID  string
		verbose bool
	)

	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Run one session in memory and print the result",
		Example: "  diagnosisctl simulate --answers AABACDA --times 3000,4200",
		RunE: func(cmd *cobra.Command, args []string) error {
			durations, err := parseTimes(times)
			if err != nil {
				return err
			}

			var log logger.ILogger = logger.NewNop()
			if verbose {
				log = logger.NewConsoleLogger()
			}

			result, asked, err := simulate(cmd.Context(), strings.ToUpper(answers), durations, userID, log)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "asked: %s\n", strings.Join(asked, ", "))
			enc := json.NewEncoder(out)
			enc.SetIndent("", "  ")
			return enc.Encode(result)
		},
	}

	cmd.Flags().StringVar(&answers, "answers", "", "answer labels in the order questions are asked, e.g. AABCDAB")
	cmd.Flags().StringVar(&times, "times", "3000", "comma-separated response times in ms, cycled over the answers")
	cmd.Flags().StringVar(&userID, "user", "", "user id to attach to the session")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "log service activity to stderr")
	_ = cmd.MarkFlagRequired("answers")
	return cmd
}

// simulate drives a session until it completes, consuming one label per
// question actually asked
func simulate(ctx context.Context, answers string, times []int64, userID string, log logger.ILogger) (*model.DiagnosisResult, []string, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	auth := service.NewAuthService(config.AuthConfig{JWTSecret: "simulate", SessionTokenTTL: time.Hour})
	svc := service.NewDiagnosisService(diagnosis.DefaultCatalog(), repository.NewMemorySessionRepo(time.Hour), auth, log)

	start, err := svc.Start(ctx, userID)
	if err != nil {
		return nil, nil, err
	}

	var asked []string
	next := start.FirstQuestion
	for i := 0; next != nil; i++ {
		if i >= len(answers) {
			return nil, asked, fmt.Errorf("ran out of answers after %d, next question is %s", i, next.ID)
		}
		asked = append(asked, next.ID)

		resp, err := svc.SubmitAnswer(ctx, start.SessionID, model.SubmitAnswerRequest{
			QuestionID:   next.ID,
			Answer:       model.Answer(answers[i : i+1]),
			ResponseTime: times[i%len(times)],
		})
		if err != nil {
			return nil, asked, fmt.Errorf("answer %d (%s): %w", i+1, next.ID, err)
		}
		next = resp.NextQuestion
	}

	result, err := svc.GetResult(ctx, start.SessionID)
	return result, asked, err
}

func parseTimes(raw string) ([]int64, error) {
	var out []int64
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		ms, err := strconv.ParseInt(part, 10, 64)
		if err != nil || ms < 0 {
			return nil, fmt.Errorf("invalid response time %q", part)
		}
		out = append(out, ms)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("at least one response time is required")
	}
	return out, nil
}
