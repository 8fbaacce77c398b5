package cmd

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"time"

	httpin "github.com/huzaifawork/hrmsnewdeploy-sub005/internal/adapters/in/http"
	"github.com/huzaifawork/hrmsnewdeploy-sub005/internal/adapters/out/postgres"
	"github.com/huzaifawork/hrmsnewdeploy-sub005/internal/adapters/out/rabbitmq"
	"github.com/huzaifawork/hrmsnewdeploy-sub005/internal/adapters/out/traffic"
	"github.com/huzaifawork/hrmsnewdeploy-sub005/internal/adapters/out/trafficcache"
	"github.com/huzaifawork/hrmsnewdeploy-sub005/internal/core/application/usecases/commands"
	"github.com/huzaifawork/hrmsnewdeploy-sub005/internal/core/application/usecases/queries"
	"github.com/huzaifawork/hrmsnewdeploy-sub005/internal/core/domain/model/policy"
	"github.com/huzaifawork/hrmsnewdeploy-sub005/internal/core/domain/services"
	"github.com/huzaifawork/hrmsnewdeploy-sub005/internal/core/ports"
	"github.com/huzaifawork/hrmsnewdeploy-sub005/internal/jobs"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type CompositionRoot struct {
	configs    Config
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory
	policy     policy.Policy
	traffic    ports.TrafficService
	publisher  ports.DispatchEventPublisher
	logger     *slog.Logger
	closers    []io.Closer
}

// NewCompositionRoot builds the policy and the outbound adapters. Traffic
// lookups are enabled by GOOGLE_MAPS_API_KEY and cached when REDIS_ADDR is
// set; events go to RabbitMQ when RABBITMQ_URL is set.
func NewCompositionRoot(configs Config, gormDB *gorm.DB, logger *slog.Logger) (*CompositionRoot, error) {
	if logger == nil {
		logger = slog.Default()
	}

	p, err := policy.NewPolicy(configs.Policy)
	if err != nil {
		return nil, err
	}

	c := &CompositionRoot{
		configs:    configs,
		gormDB:     gormDB,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB),
		policy:     p,
		publisher:  rabbitmq.NoopPublisher{},
		logger:     logger,
	}

	if err = c.wireTraffic(); err != nil {
		return nil, errors.Join(err, c.Close())
	}
	if err = c.wirePublisher(); err != nil {
		return nil, errors.Join(err, c.Close())
	}

	return c, nil
}

func (c *CompositionRoot) wireTraffic() error {
	if c.configs.GoogleMapsAPIKey == "" {
		c.logger.Warn("GOOGLE_MAPS_API_KEY is not set, ETAs use the fallback speed")
		return nil
	}

	client, err := traffic.NewGoogleDistanceMatrixClient(c.configs.GoogleMapsAPIKey, c.policy.TrafficTimeout())
	if err != nil {
		return err
	}
	c.traffic = client

	if c.configs.RedisAddr == "" {
		return nil
	}

	rdb := redis.NewClient(&redis.Options{Addr: c.configs.RedisAddr})
	c.closers = append(c.closers, rdb)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if pingErr := rdb.Ping(ctx).Err(); pingErr != nil {
		c.logger.Warn("redis is unreachable, traffic cache will fall through", "addr", c.configs.RedisAddr, "error", pingErr)
	}

	cache, err := trafficcache.NewRedisCache(rdb, client, c.configs.TrafficCacheTTL, c.logger)
	if err != nil {
		return err
	}
	c.traffic = cache

	return nil
}

func (c *CompositionRoot) wirePublisher() error {
	if c.configs.RabbitMQURL == "" {
		return nil
	}

	publisher, err := rabbitmq.Dial(c.configs.RabbitMQURL)
	if err != nil {
		return err
	}
	c.publisher = publisher
	c.closers = append(c.closers, publisher)

	return nil
}

// Close releases broker and cache connections.
func (c *CompositionRoot) Close() error {
	var errList []error
	for i := len(c.closers) - 1; i >= 0; i-- {
		errList = append(errList, c.closers[i].Close())
	}
	c.closers = nil
	return errors.Join(errList...)
}

func (c *CompositionRoot) CreateSubmitDeliveryRequestCommandHandler() commands.SubmitDeliveryRequestCommandHandler {
	var f commands.RequestUoWFactory = FuncRequestUoWFactory(func() commands.RequestUoW {
		return c.uowFactory.Create()
	})
	return commands.NewSubmitDeliveryRequestCommandHandler(f, services.NewZoneValidator(c.policy))
}

func (c *CompositionRoot) CreateCancelDeliveryRequestCommandHandler() commands.CancelDeliveryRequestCommandHandler {
	var f commands.RequestUoWFactory = FuncRequestUoWFactory(func() commands.RequestUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCancelDeliveryRequestCommandHandler(f)
}

func (c *CompositionRoot) CreatePlanDispatchCommandHandler() commands.PlanDispatchCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewPlanDispatchCommandHandler(f, services.NewNearestFirstPlanner(c.policy), c.publisher, c.logger)
}

func (c *CompositionRoot) CreateQuoteDeliveryQueryHandler() queries.QuoteDeliveryQueryHandler {
	return queries.NewQuoteDeliveryQueryHandler(
		services.NewZoneValidator(c.policy),
		services.NewFeeCalculator(c.policy),
		services.NewETAEstimator(c.policy, c.traffic, c.logger),
	)
}

func (c *CompositionRoot) CreateGetPendingRequestsQueryHandler() queries.GetPendingRequestsQueryHandler {
	return queries.NewGetPendingRequestsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetDispatchRunQueryHandler() queries.GetDispatchRunQueryHandler {
	return queries.NewGetDispatchRunQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateHTTPServer() *httpin.Server {
	return httpin.NewServer(
		c.CreateSubmitDeliveryRequestCommandHandler(),
		c.CreateCancelDeliveryRequestCommandHandler(),
		c.CreatePlanDispatchCommandHandler(),
		c.CreateQuoteDeliveryQueryHandler(),
		c.CreateGetPendingRequestsQueryHandler(),
		c.CreateGetDispatchRunQueryHandler(),
		c.logger,
	)
}

func (c *CompositionRoot) CreateJobManager() (*jobs.JobManager, error) {
	return jobs.NewJobManager(c.CreatePlanDispatchCommandHandler(), c.configs.DispatchSchedule, c.logger)
}

type FuncRequestUoWFactory func() commands.RequestUoW

func (f FuncRequestUoWFactory) Create() commands.RequestUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
