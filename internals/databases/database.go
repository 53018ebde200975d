package database

import (
	"fmt"
	"log"
	"math/big"
	"os"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/Jalann18/kcm-corredora/internals/configs"
	agenteModel "github.com/Jalann18/kcm-corredora/internals/features/agentes/model"
	homeModel "github.com/Jalann18/kcm-corredora/internals/features/home/model"
	leadModel "github.com/Jalann18/kcm-corredora/internals/features/leads/model"
	propModel "github.com/Jalann18/kcm-corredora/internals/features/propiedades/model"
	userModel "github.com/Jalann18/kcm-corredora/internals/features/users/model"
)

var DB *gorm.DB

func ConnectDB() {
	log.Println("[INFO] Conectando a PostgreSQL...")

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		sslmode := getenv("DB_SSLMODE", "require")
		dsn = fmt.Sprintf(
			"postgres://%s:%s@%s:%s/%s?sslmode=%s&application_name=kcm&options=-c statement_timeout=3000",
			os.Getenv("DB_USER"),
			os.Getenv("DB_PASSWORD"),
			os.Getenv("DB_HOST"),
			os.Getenv("DB_PORT"),
			os.Getenv("DB_NAME"),
			sslmode,
		)
	}

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  dsn,
		PreferSimpleProtocol: true, // compatible con PgBouncer en transaction pooling
	}), &gorm.Config{Logger: configs.NewGormLogger()})
	if err != nil {
		log.Fatalf("[ERROR] No se pudo conectar a la DB: %v", err)
	}
	DB = db
	log.Println("[INFO] DB conectada.")
}

func TunePool() {
	sqlDB, err := DB.DB()
	if err != nil {
		log.Printf("[WARN] pool tune err: %v", err)
		return
	}
	sqlDB.SetMaxOpenConns(20)
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetConnMaxIdleTime(60 * time.Second)
	sqlDB.SetConnMaxLifetime(10 * time.Minute)
}

// Migrar crea/actualiza el esquema completo del sitio.
func Migrar(db *gorm.DB) error {
	return db.AutoMigrate(
		&agenteModel.AgenteModel{},
		&propModel.PropiedadModel{},
		&propModel.ImagenPropiedadModel{},
		&leadModel.LeadModel{},
		&homeModel.CarouselSlideModel{},
		&userModel.UsuarioAdminModel{},
	)
}

// BackfillPrecioUF convierte precio_clp a UF para filas que aún no tienen
// precio_uf, al valor UF_CLP_VALUE (fallback 36000 CLP por UF). Redondeo
// half-up a 2 decimales, igual que la migración original.
func BackfillPrecioUF(db *gorm.DB) error {
	ufCLP := int64(36000)
	if raw := configs.GetEnv("UF_CLP_VALUE"); raw != "" {
		var v big.Int
		if _, ok := v.SetString(raw, 10); ok && v.Sign() > 0 && v.IsInt64() {
			ufCLP = v.Int64()
		}
	}

	type fila struct {
		ID        string
		PrecioCLP int64
	}
	var filas []fila
	if err := db.Table("propiedades").
		Select("id, precio_clp").
		Where("precio_uf IS NULL AND precio_clp > 0").
		Find(&filas).Error; err != nil {
		return err
	}

	for _, f := range filas {
		// half-up: (clp*100 + uf/2) / uf, en centésimas de UF
		cent := (f.PrecioCLP*100 + ufCLP/2) / ufCLP
		uf := float64(cent) / 100
		if err := db.Table("propiedades").
			Where("id = ?", f.ID).
			Update("precio_uf", uf).Error; err != nil {
			return err
		}
	}
	if len(filas) > 0 {
		log.Printf("[INFO] Backfill precio_uf: %d propiedades convertidas (UF=%d CLP)", len(filas), ufCLP)
	}
	return nil
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
