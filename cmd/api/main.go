// @title        Ticket Logger API
// @version      1.0
// @description  CRUD de regiones, provincias, supermercados, ubicaciones, categorías, productos y tickets; notificaciones por STOMP.
// @BasePath     /
// @securityDefinitions.apikey  Bearer
// @in                          header
// @name                        Authorization
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/nats-io/nats.go"

	"github.com/jhoicas/ticket-logger-api/internal/application/auth"
	"github.com/jhoicas/ticket-logger-api/internal/application/notification"
	"github.com/jhoicas/ticket-logger-api/internal/application/ports"
	"github.com/jhoicas/ticket-logger-api/internal/application/usecase"
	"github.com/jhoicas/ticket-logger-api/internal/domain"
	"github.com/jhoicas/ticket-logger-api/internal/domain/repository"
	"github.com/jhoicas/ticket-logger-api/internal/infrastructure/memory"
	inframongo "github.com/jhoicas/ticket-logger-api/internal/infrastructure/mongo"
	"github.com/jhoicas/ticket-logger-api/internal/infrastructure/natsbus"
	infrapdf "github.com/jhoicas/ticket-logger-api/internal/infrastructure/pdf"
	"github.com/jhoicas/ticket-logger-api/internal/infrastructure/postgres"
	"github.com/jhoicas/ticket-logger-api/internal/infrastructure/storage"
	stompws "github.com/jhoicas/ticket-logger-api/internal/infrastructure/websocket"
	httpRouter "github.com/jhoicas/ticket-logger-api/internal/interfaces/http"
	"github.com/jhoicas/ticket-logger-api/pkg/config"
	"github.com/jhoicas/ticket-logger-api/pkg/i18n"
	"github.com/jhoicas/ticket-logger-api/pkg/jwt"
	"github.com/jhoicas/ticket-logger-api/pkg/logger"

	_ "github.com/jhoicas/ticket-logger-api/docs"
)

// repositories implementaciones elegidas según DB_DRIVER.
type repositories struct {
	regions       repository.RegionRepository
	provinces     repository.ProvinceRepository
	supermarkets  repository.SupermarketRepository
	locations     repository.LocationRepository
	categories    repository.CategoryRepository
	products      repository.ProductRepository
	tickets       repository.TicketRepository
	notifications repository.NotificationRepository
	tx            usecase.TicketTxRunner
}

func postgresRepositories(pool *pgxpool.Pool) repositories {
	return repositories{
		regions:      postgres.NewRegionRepository(pool),
		provinces:    postgres.NewProvinceRepository(pool),
		supermarkets: postgres.NewSupermarketRepository(pool),
		locations:    postgres.NewLocationRepository(pool),
		categories:   postgres.NewCategoryRepository(pool),
		products:     postgres.NewProductRepository(pool),
		tickets:      postgres.NewTicketRepository(pool),
		tx:           postgres.NewTxRunner(pool),
	}
}

func memoryRepositories() repositories {
	s := memory.NewStore()
	return repositories{
		regions:       memory.NewRegionRepository(s),
		provinces:     memory.NewProvinceRepository(s),
		supermarkets:  memory.NewSupermarketRepository(s),
		locations:     memory.NewLocationRepository(s),
		categories:    memory.NewCategoryRepository(s),
		products:      memory.NewProductRepository(s),
		tickets:       memory.NewTicketRepository(s),
		notifications: memory.NewNotificationRepository(),
		tx:            memory.NewTxRunner(s),
	}
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:        cfg.App.Env,
		Level:      cfg.Log.Level,
		File:       cfg.Log.File,
		MaxSizeMB:  cfg.Log.MaxSizeMB,
		MaxBackups: cfg.Log.MaxBackups,
		MaxAgeDays: cfg.Log.MaxAgeDays,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("db", cfg.DB.Driver).
		Msg("iniciando aplicación")

	ctx, stop := context.WithCancel(context.Background())
	defer stop()

	bundle, err := i18n.New(cfg.I18n.DefaultLocale, i18n.Catalogs{
		"es": domain.MessagesES,
		"en": domain.MessagesEN,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("catálogo de mensajes")
	}

	publicKey, err := jwt.LoadPublicKey(cfg.JWT.PublicKeyPath)
	if err != nil {
		log.Fatal().Err(err).Str("path", cfg.JWT.PublicKeyPath).Msg("llave pública JWT")
	}
	gate := auth.NewGate(publicKey, cfg.JWT.ExpectedSubject)

	// Persistencia: PostgreSQL + MongoDB, o todo en memoria (DB_DRIVER=memory).
	var repos repositories
	if cfg.DB.Driver == "memory" {
		repos = memoryRepositories()
		log.Warn().Msg("usando repositorios en memoria: los datos no se conservan")
	} else {
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a PostgreSQL")
		}
		defer pool.Close()
		if cfg.DB.AutoMigrate {
			applied, err := postgres.Migrate(ctx, pool)
			if err != nil {
				log.Fatal().Err(err).Msg("migraciones")
			}
			log.Info().Strs("applied", applied).Msg("migraciones aplicadas")
		}
		repos = postgresRepositories(pool)

		mongoClient, err := inframongo.Connect(ctx, cfg.Mongo)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a MongoDB")
		}
		defer func() {
			dctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = mongoClient.Disconnect(dctx)
		}()
		notifRepo := inframongo.NewNotificationRepository(mongoClient, cfg.Mongo.Database, cfg.Mongo.NotificationsCollection)
		if err := notifRepo.EnsureIndexes(ctx); err != nil {
			log.Warn().Err(err).Msg("índices de notificaciones")
		}
		repos.notifications = notifRepo
	}

	// Imágenes de categorías: disco local o S3/MinIO.
	var images ports.ImageStorage
	imagesDir := ""
	switch cfg.Storage.Provider {
	case "s3":
		s3, err := storage.NewS3Storage(ctx, cfg.Storage.S3, log.Named("storage"))
		if err != nil {
			log.Fatal().Err(err).Msg("almacenamiento S3")
		}
		images = s3
	default:
		local, err := storage.NewLocalStorage(cfg.Storage.LocalPath, cfg.Storage.BaseURL, log.Named("storage"))
		if err != nil {
			log.Fatal().Err(err).Msg("almacenamiento local")
		}
		images = local
		imagesDir = local.BasePath()
	}

	// Fan-out de notificaciones: hub STOMP local, opcionalmente a través de NATS.
	hub := stompws.NewHub(log.Named("websocket"))
	go hub.Run(ctx)

	var publisher ports.Publisher = hub
	var relay *natsbus.Relay
	var nc *nats.Conn
	if cfg.Notifications.NATSURL != "" {
		nc, err = natsbus.Connect(cfg.Notifications.NATSURL, log.Named("nats"))
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a NATS")
		}
		relay = natsbus.NewRelay(nc, cfg.Notifications.NATSSubject, hub, cfg.Notifications.PublishTimeout, log.Named("nats"))
		if err := relay.Start(); err != nil {
			log.Fatal().Err(err).Msg("relé NATS")
		}
		publisher = natsbus.NewPublisher(nc, cfg.Notifications.NATSSubject)
	}

	dispatcher := notification.NewDispatcher(publisher, notification.DispatcherConfig{
		Workers:        cfg.Notifications.Workers,
		QueueSize:      cfg.Notifications.QueueSize,
		PublishTimeout: cfg.Notifications.PublishTimeout,
	}, log.Named("notifications"))
	dispatcher.Start()

	ticketUC := usecase.NewTicketUseCase(repos.tickets, repos.locations, repos.products, repos.tx, log)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		BodyLimit:    cfg.HTTP.BodyLimitMB * 1024 * 1024,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Ticket Logger API",
	}))

	httpRouter.Router(app, httpRouter.RouterDeps{
		RegionUC:        usecase.NewRegionUseCase(repos.regions, log),
		ProvinceUC:      usecase.NewProvinceUseCase(repos.provinces, repos.regions, log),
		SupermarketUC:   usecase.NewSupermarketUseCase(repos.supermarkets, log),
		LocationUC:      usecase.NewLocationUseCase(repos.locations, repos.supermarkets, repos.provinces, log),
		CategoryUC:      usecase.NewCategoryUseCase(repos.categories, images, log),
		ProductUC:       usecase.NewProductUseCase(repos.products, log),
		TicketUC:        ticketUC,
		TicketReceiptUC: usecase.NewTicketReceiptUseCase(ticketUC, infrapdf.NewTicketPDFGenerator()),
		Notifications:   notification.NewService(repos.notifications, dispatcher, log),
		Hub:             hub,
		Verifier:        gate,
		AdminRole:       cfg.JWT.AdminRole,
		Bundle:          bundle,
		Log:             log,
		ImagesDir:       imagesDir,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}
	if err := dispatcher.Stop(shutdownCtx); err != nil {
		log.Warn().Err(err).Msg("notificaciones pendientes descartadas")
	}
	if relay != nil {
		_ = relay.Stop()
	}
	if nc != nil {
		nc.Close()
	}
	stop() // cierra las sesiones STOMP

	log.Info().Msg("aplicación detenida")
}
