package database

import (
	"log"
	"os"
	"time"

	"gestion-radiografias/internal/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

// mismo límite de conexiones que usaba el pool original
const maxConexiones = 10

func Init(dsn string) {
	var err error

	const maxAttempts = 10
	for i := 1; i <= maxAttempts; i++ {
		log.Printf("conectando a la BD (intento %d/%d)...", i, maxAttempts)

		DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
		if err == nil {
			log.Println("conexión a la BD establecida")
			break
		}

		log.Printf("fallo al conectar a la BD: %v", err)
		time.Sleep(2 * time.Second)
	}

	if err != nil {
		log.Fatalf("no se pudo conectar a la BD tras %d intentos: %v", maxAttempts, err)
	}

	// pool acotado: las peticiones esperan en cola en lugar de fallar
	if sqlDB, err := DB.DB(); err == nil {
		sqlDB.SetMaxOpenConns(maxConexiones)
		sqlDB.SetMaxIdleConns(maxConexiones)
	}

	if err := Migrar(DB); err != nil {
		log.Fatalf("fallo en migraciones: %v", err)
	}

	crearAdminPorDefecto()
}

// Migrar aplica el esquema; lo usan también las pruebas sobre sqlite.
func Migrar(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Usuario{},
		&models.CodigoAcceso{},
		&models.Paciente{},
		&models.Radiografia{},
	)
}

// admin sólo desde el entorno, nunca desde un formulario
func crearAdminPorDefecto() {
	username := os.Getenv("ADMIN_USERNAME")
	if username == "" {
		username = "admin"
	}
	password := os.Getenv("ADMIN_PASSWORD")
	if password == "" {
		password = "Admin123!"
	}

	var count int64
	if err := DB.Model(&models.Usuario{}).
		Where("tipo_usuario = ?", models.RolAdmin).
		Count(&count).Error; err != nil {
		log.Printf("no se pudo comprobar el admin: %v", err)
		return
	}
	if count > 0 {
		// ya hay un admin
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("no se pudo hashear la contraseña del admin: %v", err)
		return
	}

	admin := models.Usuario{
		Username:       username,
		PasswordHash:   string(hash),
		TipoUsuario:    models.RolAdmin,
		NombreCompleto: "Administrador",
	}

	if err := DB.Create(&admin).Error; err != nil {
		log.Printf("no se pudo crear el admin por defecto: %v", err)
		return
	}

	log.Printf("creado admin por defecto: %s", username)
}
