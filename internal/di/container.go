package di

import (
	"github.com/OfekRoodich/popcorn-palace/internal/handler"
	"github.com/OfekRoodich/popcorn-palace/internal/repository"
	"github.com/OfekRoodich/popcorn-palace/internal/service"
	"github.com/OfekRoodich/popcorn-palace/internal/worker"
	"github.com/OfekRoodich/popcorn-palace/pkg/database"
	"github.com/OfekRoodich/popcorn-palace/pkg/redis"
)

// Container holds all dependencies for the service
type Container struct {
	// Infrastructure
	DB    *database.PostgresDB
	Redis *redis.Client

	// Repositories
	MovieRepo    repository.MovieRepository
	TheaterRepo  repository.TheaterRepository
	ShowtimeRepo repository.ShowtimeRepository
	BookingRepo  repository.BookingRepository
	OutboxRepo   repository.OutboxRepository

	// Services
	MovieService    service.MovieService
	TheaterService  service.TheaterService
	ShowtimeService service.ShowtimeService
	BookingService  service.BookingService

	// Handlers
	HealthHandler   *handler.HealthHandler
	MovieHandler    *handler.MovieHandler
	TheaterHandler  *handler.TheaterHandler
	ShowtimeHandler *handler.ShowtimeHandler
	BookingHandler  *handler.BookingHandler

	// Workers
	OutboxWorker *worker.OutboxWorker
}

// ContainerConfig contains configuration for building the container
type ContainerConfig struct {
	DB        *database.PostgresDB
	Redis     *redis.Client
	Publisher worker.Publisher
}

// NewContainer creates a new dependency injection container
func NewContainer(cfg *ContainerConfig) *Container {
	c := &Container{
		DB:    cfg.DB,
		Redis: cfg.Redis,
	}

	// Initialize repositories
	pgMovieRepo := repository.NewPostgresMovieRepository(c.DB.Pool())
	pgTheaterRepo := repository.NewPostgresTheaterRepository(c.DB.Pool())

	// Wrap catalog reads with cache if Redis is available
	if c.Redis != nil {
		c.MovieRepo = repository.NewCachedMovieRepository(pgMovieRepo, c.Redis)
		c.TheaterRepo = repository.NewCachedTheaterRepository(pgTheaterRepo, c.Redis)
	} else {
		c.MovieRepo = pgMovieRepo
		c.TheaterRepo = pgTheaterRepo
	}
	c.ShowtimeRepo = repository.NewPostgresShowtimeRepository(c.DB.Pool())
	c.BookingRepo = repository.NewPostgresBookingRepository(c.DB.Pool())
	c.OutboxRepo = repository.NewPostgresOutboxRepository(c.DB.Pool())

	// Initialize services
	c.MovieService = service.NewMovieService(c.MovieRepo)
	c.TheaterService = service.NewTheaterService(c.TheaterRepo)
	c.ShowtimeService = service.NewShowtimeService(c.ShowtimeRepo, c.MovieRepo, c.TheaterRepo)
	c.BookingService = service.NewBookingService(c.BookingRepo, c.ShowtimeRepo)

	// Initialize handlers
	c.HealthHandler = handler.NewHealthHandler(c.DB, c.Redis)
	c.MovieHandler = handler.NewMovieHandler(c.MovieService)
	c.TheaterHandler = handler.NewTheaterHandler(c.TheaterService)
	c.ShowtimeHandler = handler.NewShowtimeHandler(c.ShowtimeService, c.BookingService)
	c.BookingHandler = handler.NewBookingHandler(c.BookingService)

	// The outbox worker is only wired when a broker publisher is configured
	if cfg.Publisher != nil {
		c.OutboxWorker = worker.NewOutboxWorker(c.OutboxRepo, cfg.Publisher, nil)
	}

	return c
}
