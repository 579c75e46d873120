package router

import (
	"context"
	"database/sql"
	"net/http"
	"time"

	_ "finca-lechera/docs"
	mem "finca-lechera/internal/adapters/storage/memory"
	pg "finca-lechera/internal/adapters/storage/postgres"
	"finca-lechera/internal/domain/animales"
	"finca-lechera/internal/domain/produccion"
	"finca-lechera/internal/middleware"
	"finca-lechera/internal/platform/logger"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

type Options struct {
	Logger logger.Logger // nil => descarta logs

	// Opcional: si viene, usa Postgres. Si no, in-memory.
	DB *sql.DB

	// Animales a dar de alta al arrancar (ANIMALES_SEED_FILE).
	Seed []animales.CreateInput

	// Reloj del caso de uso; nil => time.Now.
	Now func() time.Time

	// SWAGGER_ENABLED=false
	DisableSwagger bool
}

func NewRouter(opts Options) http.Handler {
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.RequestLog(log))
	r.Use(middleware.Recover(log))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	if !opts.DisableSwagger {
		r.Get("/swagger/*", httpSwagger.WrapHandler)
	}

	var (
		animalRepo     animales.Repository
		produccionRepo produccion.Repository
	)

	if opts.DB != nil {
		animalRepo = pg.NewAnimalesRepo(opts.DB)
		produccionRepo = pg.NewProduccionRepo(opts.DB)
		log.Info("storage: postgres", nil)
	} else {
		animalRepo = mem.NewAnimalRepo()
		produccionRepo = mem.NewProduccionRepo()
		log.Info("storage: in-memory", nil)
	}

	// Services por módulo
	animalesSvc := animales.NewService(animalRepo)
	produccionSvc := produccion.NewService(produccionRepo)
	registrar := produccion.NewRegistrarProduccion(animalRepo, produccionRepo, opts.Now)

	seedAnimales(animalesSvc, opts.Seed, log)

	// Rutas por módulo
	animales.RegisterRoutes(r, animalesSvc)
	produccion.RegisterRoutes(r, registrar, produccionSvc, animalesSvc, log)

	return r
}

// seedAnimales solo carga sobre un almacenamiento vacío, así un reinicio contra Postgres
// no duplica el rodeo. Es best-effort: un animal inválido se loguea y se sigue con el resto.
func seedAnimales(svc *animales.Service, items []animales.CreateInput, log logger.Logger) {
	if len(items) == 0 {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	existing, err := svc.List(ctx)
	if err != nil {
		log.Warn("seed: list animales failed", map[string]any{"err": err.Error()})
		return
	}
	if len(existing) > 0 {
		log.Info("seed skipped: animales already present", map[string]any{"existing": len(existing)})
		return
	}

	created := 0
	for i, in := range items {
		a, err := svc.Create(ctx, in)
		if err != nil {
			log.Warn("seed: animal skipped", map[string]any{"index": i, "err": err.Error()})
			continue
		}
		log.Debug("seed: animal created", map[string]any{"animal_id": a.ID})
		created++
	}
	log.Info("seed loaded", map[string]any{"created": created, "total": len(items)})
}
