package db

import (
	"fmt"
	"os"
	"strconv"

	"gorm.io/gorm"
)

// GetDB monta a conexão a partir das variáveis de ambiente.
// Host e nome do banco ausentes são condição fatal de boot.
func GetDB() (*gorm.DB, error) {
	db_host := os.Getenv("DB_HOST")
	db_name := os.Getenv("DB_NAME")
	if db_host == "" || db_name == "" {
		return nil, fmt.Errorf("DB_HOST e DB_NAME precisam estar definidas")
	}

	db_host_port := os.Getenv("DB_PORT")
	port, err := strconv.ParseUint(db_host_port, 10, 32)
	if err != nil {
		port = 5432 // Default PostgreSQL port
	}

	db_username := os.Getenv("DB_USERNAME")
	db_password := os.Getenv("DB_PASSWORD")
	return ConnectDataBase(uint(port), db_host, db_name, db_username, db_password)
}
