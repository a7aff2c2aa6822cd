package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"
	"go.uber.org/zap"

	_ "zoo-rooms/docs"
	"zoo-rooms/internal/cache"
	"zoo-rooms/internal/domain/animals"
	"zoo-rooms/internal/domain/rooms"
	"zoo-rooms/internal/middleware"
)

type Options struct {
	Logger *zap.Logger // nil => Nop

	// Opcional: si no viene, todo en memoria.
	Backends *Backends

	// Opcional: si no viene, se crea uno propio con los collectors de Go y proceso.
	Registry *prometheus.Registry
}

func NewRouter(opts Options) http.Handler {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	b := opts.Backends
	if b == nil {
		b = MemoryBackends()
	}
	reg := opts.Registry
	if reg == nil {
		reg = prometheus.NewRegistry()
		reg.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
	}

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(middleware.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.RequestLogger(log))
	r.Use(middleware.Recover(log))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg}))
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	c := cache.Instrument(b.Cache, reg)

	// Services por módulo. El agregador escucha cambios de rooms (títulos/bajas).
	roomsSvc := rooms.NewService(b.Rooms, c, log)
	favorites := animals.NewFavoriteAggregator(b.Animals, roomsSvc, c, log, reg)
	animalsSvc := animals.NewService(b.Animals, c, favorites, log)
	roomsSvc.Subscribe(favorites)

	// Rutas por módulo
	rooms.RegisterRoutes(r, roomsSvc)
	animals.RegisterRoutes(r, animalsSvc, favorites)

	return r
}
