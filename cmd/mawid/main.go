package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/mawid-sa/mawid/internal/apiclient"
	"github.com/mawid-sa/mawid/internal/app"
	"github.com/mawid-sa/mawid/internal/config"
	"github.com/mawid-sa/mawid/internal/format"
	"github.com/mawid-sa/mawid/internal/service"
	"github.com/mawid-sa/mawid/internal/session"
)

func main() {

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger := app.NewLogger(cfg.Environment)

	defer logger.Sync()

	logger.Sugar().Infow("Starting mawid client",
		"environment", cfg.Environment,
		"backend_url", cfg.APIBaseURL)

	store, cleanup, err := newSessionStore(cfg, logger)
	if err != nil {
		logger.Fatal("Failed to create session store", zap.Error(err))
	}
	defer cleanup()

	client := apiclient.New(cfg.APIBaseURL, cfg.HTTPTimeout, store, logger)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	monitor := app.NewMonitor(client, cfg.MonitorInterval, logger)
	monitor.Start(ctx)
	defer monitor.Stop()

	status := client.Connectivity(ctx)
	if status.Connected {
		fmt.Printf("Backend reachable at %s (%d centers, health: %s)\n",
			status.BackendURL, status.CentersCount, status.HealthStatus)
	} else {
		fmt.Printf("Backend unreachable at %s, running in demo mode: %s\n",
			status.BackendURL, status.Error)
	}

	if os.Getenv("MAWID_DEMO") == "1" {
		runDemo(ctx, client, store, logger)
		return
	}

	// Stay up for the monitor until interrupted.
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	<-sigChan
	logger.Info("Shutting down")
}

func newSessionStore(cfg *config.Config, logger *zap.Logger) (session.Store, func(), error) {
	if cfg.RedisAddr == "" {
		return session.NewMemoryStore(), func() {}, nil
	}

	store, err := session.NewRedisStore(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
	if err != nil {
		return nil, nil, err
	}
	logger.Info("Session store backed by redis", zap.String("addr", cfg.RedisAddr))
	return store, func() { store.Close() }, nil
}

// runDemo walks one booking attempt end to end against the first available
// slot of the first center, logging in with the demo credentials.
func runDemo(ctx context.Context, client *apiclient.Client, store session.Store, logger *zap.Logger) {
	auth := service.NewAuthService(store, logger)
	flow := service.NewBookingFlow(client, store, logger)

	sess, err := auth.Login(ctx, "1234567890", "123456")
	if err != nil {
		logger.Fatal("Demo login failed", zap.Error(err))
	}
	fmt.Printf("Logged in as %s (%s)\n", sess.Name, sess.PatientID)

	centers, err := client.ListCenters(ctx)
	if err != nil || len(centers.Data) == 0 {
		logger.Fatal("No centers available", zap.Error(err))
	}
	center := centers.Data[0]
	fmt.Printf("Center: %s (%s)\n",
		format.CenterDisplayName(center.CenterID, center.Name),
		format.CityByCenterID(center.CenterID))

	slots, err := client.ListAvailableSlots(ctx, center.CenterID)
	if err != nil || len(slots.Data.Slots) == 0 {
		logger.Fatal("No slots available", zap.Error(err))
	}
	slot := slots.Data.Slots[0]
	if slots.Data.BestSlot != nil {
		slot = *slots.Data.BestSlot
	}
	fmt.Printf("Slot: %s %s (wait %s)\n",
		slot.DateArabic, slot.TimeArabic, format.WaitMinutes(slot.EstimatedWaitMinutes))

	attempt, err := flow.Book(ctx, slot)
	if err != nil {
		fmt.Printf("Booking failed: %v\n", err)
		return
	}

	switch attempt.State {
	case service.StateCancellationRecommended:
		fmt.Printf("High no-show risk (%.0f%%): %s\n",
			attempt.Prediction.NoShowProbability*100, attempt.Prediction.Message)
		if err := flow.AcceptCancellation(ctx, attempt); err != nil {
			fmt.Printf("Cancellation failed: %v\n", err)
		} else {
			fmt.Println("Appointment released on recommendation")
		}
	case service.StateConfirmed:
		fmt.Printf("Confirmed: %s %s at %s\n",
			attempt.Summary.Date, attempt.Summary.Time, attempt.Summary.Center)
	}
}
