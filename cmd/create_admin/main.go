package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/Niketh-Putta/Terrawise-Ventures/internal/domain/models"
	"github.com/Niketh-Putta/Terrawise-Ventures/internal/domain/services"
	"github.com/Niketh-Putta/Terrawise-Ventures/internal/infrastructure/config"
	"github.com/Niketh-Putta/Terrawise-Ventures/internal/infrastructure/database"
	"github.com/joho/godotenv"
)

func main() {
	email := flag.String("email", "", "admin email address")
	password := flag.String("password", "", "admin password")
	fullName := flag.String("name", "Terrawise Admin", "admin full name")
	flag.Parse()

	if *email == "" || *password == "" {
		log.Fatal("usage: create_admin -email <email> -password <password> [-name <full name>]")
	}

	if err := godotenv.Load(); err != nil {
		log.Printf("no .env file loaded: %v", err)
	}

	cfg := config.GetConfig()

	pool, err := database.NewConnectionPool(cfg)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}
	defer pool.Close()
	db := pool.GetDB()

	if err := db.AutoMigrate(&models.AdminUser{}); err != nil {
		log.Fatalf("migrate admin_users: %v", err)
	}

	adminService := services.NewAdminService(db, cfg)
	admin := &models.AdminUser{
		Email:    *email,
		Password: *password,
		FullName: *fullName,
	}
	if err := adminService.CreateAdmin(admin); err != nil {
		log.Fatalf("failed to create admin: %v", err)
	}

	fmt.Printf("Admin account created: %s (id %d)\n", admin.Email, admin.ID)
	fmt.Println("Please change the password after first login.")
}
