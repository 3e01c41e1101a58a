package main

import (
	"context"
	"net"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	configs "homework_tracker/config"
	"homework_tracker/internal/cache"
	"homework_tracker/internal/domain"
	"homework_tracker/internal/repository"
	"homework_tracker/internal/server"
	"homework_tracker/internal/service"
	"homework_tracker/pkg/db"
	"homework_tracker/pkg/kafka"
	"homework_tracker/pkg/logger"

	_ "github.com/lib/pq"
)

const healthInterval = 15 * time.Second

func main() {
	bootLog, err := logger.New(logger.Config{})
	if err != nil {
		panic(err)
	}

	cfg, err := configs.Load()
	if err != nil {
		bootLog.Fatalf("Failed to load config: %v", err)
	}

	log, err := logger.New(logger.Config{Level: cfg.Log.Level, Format: cfg.Log.Format})
	if err != nil {
		bootLog.Fatalf("Failed to build logger: %v", err)
	}
	defer func() { _ = log.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, log); err != nil {
		log.Fatal("service stopped with error", zap.Error(err))
	}
	log.Info("Server stopped")
}

func run(ctx context.Context, cfg *configs.Config, log *logger.Logger) error {
	pg, err := db.NewPostgres(ctx, db.Config{
		URL:            cfg.DB.URL,
		Host:           cfg.DB.Host,
		Port:           cfg.DB.Port,
		User:           cfg.DB.User,
		Password:       cfg.DB.Password,
		DBName:         cfg.DB.DBName,
		SSLMode:        cfg.DB.SSLMode,
		MigrationsPath: cfg.DB.MigrationsPath,
		ConnectRetries: cfg.DB.ConnectRetries,
		MaxOpenConns:   cfg.DB.MaxOpenConns,
	}, log)
	if err != nil {
		return err
	}
	defer pg.Close()

	homeworkRepo := repository.NewHomeworkRepository(pg.DB())
	submissionRepo := repository.NewSubmissionRepository(pg.DB())
	reminderRepo := repository.NewReminderRepository(pg.DB())
	challengeRepo := repository.NewChallengeRepository(pg.DB())
	pointsRepo := repository.NewPointsRepository(pg.DB())
	reportRepo := repository.NewReportRepository(pg.DB())

	if err := seedChallenges(ctx, challengeRepo, cfg.Gamification.Challenges, log); err != nil {
		return err
	}

	checks := []server.Dependency{{Name: "postgres", Check: pg.DB().PingContext}}

	var (
		ledger      service.PointLedger = pointsRepo
		leaderboard service.Leaderboard = pointsRepo
	)
	if cfg.Redis.Addr != "" {
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer rdb.Close()

		board := cache.NewLeaderboard(rdb, pointsRepo, cfg.Redis.Key, log)
		if err := board.Warm(ctx, pointsRepo.AllPoints); err != nil {
			log.Warn("Failed to warm leaderboard cache", zap.Error(err))
		}
		ledger, leaderboard = board, board
		checks = append(checks, server.Dependency{Name: "redis", Check: func(ctx context.Context) error {
			return rdb.Ping(ctx).Err()
		}})
	}

	notifyProducer, err := kafka.NewProducer(kafka.Config{
		Brokers:      cfg.Kafka.Brokers,
		Async:        true,
		BatchTimeout: cfg.Kafka.BatchTimeout,
	}, log)
	if err != nil {
		return err
	}
	defer notifyProducer.Close()

	eventProducer, err := kafka.NewProducer(kafka.Config{
		Brokers:      cfg.Kafka.Brokers,
		BatchTimeout: cfg.Kafka.BatchTimeout,
	}, log)
	if err != nil {
		return err
	}
	defer eventProducer.Close()

	levels, err := domain.NewLevelTable(cfg.Gamification.Levels)
	if err != nil {
		return err
	}

	services, err := newServices(cfg, dependencies{
		homework:    homeworkRepo,
		submissions: submissionRepo,
		reminders:   reminderRepo,
		challenges:  challengeRepo,
		reports:     reportRepo,
		ledger:      ledger,
		leaderboard: leaderboard,
		levels:      levels,
		sink:        kafka.NewNotificationSink(notifyProducer, cfg.Kafka.ReminderTopic, log),
		publisher:   kafka.NewEventPublisher(eventProducer, cfg.Kafka.EventTopic),
		clock:       service.SystemClock{},
	}, log)
	if err != nil {
		return err
	}

	srv := server.NewServer(log, cfg.GRPC.Timeout)

	listener, err := net.Listen("tcp", cfg.GRPC.Address)
	if err != nil {
		return err
	}

	serveErr := make(chan error, 1)
	go func() {
		log.Infof("Starting gRPC server on %s", cfg.GRPC.Address)
		serveErr <- srv.Serve(listener)
	}()

	go srv.WatchHealth(ctx, healthInterval, checks)
	go NewReminderWorker(services.Scheduler, log).Start(ctx)

	select {
	case <-ctx.Done():
		log.Info("Shutting down server...")
		srv.Stop()
		return nil
	case err := <-serveErr:
		return err
	}
}

type homeworkStore interface {
	service.HomeworkRepository
	service.ClassRoster
}

type dependencies struct {
	homework    homeworkStore
	submissions service.SubmissionStore
	reminders   service.ReminderStore
	challenges  service.ChallengeStore
	reports     service.ReportStore
	ledger      service.PointLedger
	leaderboard service.Leaderboard
	levels      domain.LevelTable
	sink        service.NotificationSink
	publisher   service.EventPublisher
	clock       service.Clock
}

// Services is the in-process API of the tracker. Transports are built on
// top of it.
type Services struct {
	Homework    *service.HomeworkService
	Submissions *service.SubmissionTracker
	Scheduler   *service.ReminderScheduler
	Engine      *service.GamificationEngine
	Reports     *service.ReportAggregator
	Dispatcher  *service.EventDispatcher
}

func newServices(cfg *configs.Config, deps dependencies, log *logger.Logger) (*Services, error) {
	engine := service.NewGamificationEngine(deps.challenges, deps.ledger, deps.leaderboard, deps.levels, log)
	dispatcher := service.NewEventDispatcher(log).
		AddHandler(engine).
		AddPublisher(deps.publisher)

	scheduler, err := service.NewReminderScheduler(
		service.ReminderConfig{Offsets: cfg.Reminders.Offsets, Interval: cfg.Reminders.Interval},
		deps.homework,
		deps.homework,
		deps.submissions,
		deps.reminders,
		deps.sink,
		deps.clock,
		log,
	)
	if err != nil {
		return nil, err
	}

	return &Services{
		Homework:    service.NewHomeworkService(deps.homework, deps.clock),
		Submissions: service.NewSubmissionTracker(deps.homework, deps.submissions, dispatcher, log),
		Scheduler:   scheduler,
		Engine:      engine,
		Reports:     service.NewReportAggregator(deps.homework, deps.submissions, deps.reports, deps.clock, cfg.Reports.BatchConcurrency, log),
		Dispatcher:  dispatcher,
	}, nil
}

type challengeSeeder interface {
	Upsert(ctx context.Context, c *domain.Challenge) error
}

func seedChallenges(ctx context.Context, store challengeSeeder, seeds []configs.ChallengeConfig, log *logger.Logger) error {
	for _, seed := range seeds {
		challenge, err := seed.Challenge()
		if err != nil {
			return err
		}
		if err := store.Upsert(ctx, &challenge); err != nil {
			return err
		}
		log.Info("Seeded challenge",
			zap.String("challenge_id", challenge.ID.String()),
			zap.String("type", string(challenge.Type)),
		)
	}
	return nil
}
