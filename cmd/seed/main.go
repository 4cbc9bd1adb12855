// Comando seed: crea el usuario admin inicial y un catálogo de demostración.
// Es idempotente por username y por nombre de producto: lo ya existente se salta.
package main

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"

	"github.com/gallinero/henhouse-api/internal/domain/entity"
	"github.com/gallinero/henhouse-api/internal/infrastructure/postgres"
	"github.com/gallinero/henhouse-api/pkg/config"
	"github.com/gallinero/henhouse-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: "info"})

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepository(pool)
	productRepo := postgres.NewProductRepository(pool)

	// Admin inicial
	const adminUsername = "admin"
	existing, err := userRepo.GetByUsername(adminUsername)
	if err != nil {
		log.Fatal().Err(err).Msg("consultar admin")
	}
	if existing == nil {
		hash, err := bcrypt.GenerateFromPassword([]byte("cambiame123"), bcrypt.DefaultCost)
		if err != nil {
			log.Fatal().Err(err).Msg("hash de contraseña")
		}
		admin := &entity.User{
			ID:           uuid.NewString(),
			Username:     adminUsername,
			PasswordHash: string(hash),
			FullName:     "Administrador",
			Role:         entity.RoleAdmin,
			HourlyRate:   decimal.Zero,
			CreatedAt:    time.Now().UTC(),
		}
		if err := userRepo.Create(admin); err != nil {
			log.Fatal().Err(err).Msg("crear admin")
		}
		log.Info().Str("username", adminUsername).Msg("admin creado (cambiar la contraseña)")
	} else {
		log.Info().Str("username", adminUsername).Msg("admin ya existe, se salta")
	}

	// Catálogo de demostración
	demo := []struct {
		name  string
		price string
		cost  string
		stock int
	}{
		{"Pollo Frito (8 piezas)", "45.00", "18.00", 50},
		{"Hamburguesa de Pollo", "25.00", "9.50", 80},
		{"Alitas BBQ (6 piezas)", "30.00", "12.00", 60},
		{"Papas Fritas Grandes", "12.00", "3.50", 120},
		{"Refresco 500ml", "8.00", "2.00", 200},
	}

	existingProducts, err := productRepo.List(false)
	if err != nil {
		log.Fatal().Err(err).Msg("listar productos")
	}
	byName := make(map[string]bool, len(existingProducts))
	for _, p := range existingProducts {
		byName[p.Name] = true
	}

	now := time.Now().UTC()
	created := 0
	for _, d := range demo {
		if byName[d.name] {
			continue
		}
		p := &entity.Product{
			ID:        uuid.NewString(),
			Name:      d.name,
			Price:     decimal.RequireFromString(d.price),
			Cost:      decimal.RequireFromString(d.cost),
			Stock:     d.stock,
			IsActive:  true,
			CreatedAt: now,
			UpdatedAt: now,
		}
		if err := productRepo.Create(p); err != nil {
			log.Fatal().Err(err).Str("producto", d.name).Msg("crear producto")
		}
		created++
	}
	log.Info().Int("creados", created).Msg("catálogo de demostración listo")
}
