package persistence

import (
	"context"
	"database/sql"
	"fmt"
)

// schemaDDL creates the five tables the back office works on. The UNIQUE KEY
// on precios_servicios.nombre_servicio is what makes the normalized-name
// pre-check race-free: concurrent inserts past the check hit error 1062
// instead of producing duplicates.
var schemaDDL = []string{
	`CREATE TABLE IF NOT EXISTS gastos (
		id INT AUTO_INCREMENT PRIMARY KEY,
		descripcion VARCHAR(255) NOT NULL,
		monto DECIMAL(10,2) NOT NULL,
		cantidadEnLts DECIMAL(10,2) NULL,
		fecha DATE NOT NULL,
		estado ENUM('activo','terminado') NOT NULL DEFAULT 'activo',
		cantidad_lavados INT NOT NULL DEFAULT 0,
		notas TEXT NULL,
		fecha_termino DATE NULL
	)`,
	`CREATE TABLE IF NOT EXISTS clientes (
		id INT AUTO_INCREMENT PRIMARY KEY,
		nombre VARCHAR(255) NOT NULL,
		servicio VARCHAR(255) NOT NULL,
		montoCobrado DECIMAL(10,2) NOT NULL,
		tipo_tratamiento VARCHAR(50) NOT NULL DEFAULT 'basico',
		fecha_ultimo_tratamiento DATE NULL,
		frecuencia_recomendada INT NOT NULL DEFAULT 30,
		notas_tratamiento TEXT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS gastos_maquinas (
		id INT AUTO_INCREMENT PRIMARY KEY,
		nombre VARCHAR(255) NOT NULL,
		marca VARCHAR(100) NULL,
		modelo VARCHAR(100) NULL,
		precio DECIMAL(10,2) NOT NULL,
		fecha_compra DATE NOT NULL,
		garantia_meses INT NULL,
		estado VARCHAR(100) NOT NULL DEFAULT 'operativa',
		notas TEXT NULL,
		created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE TABLE IF NOT EXISTS precios_servicios (
		id INT AUTO_INCREMENT PRIMARY KEY,
		nombre_servicio VARCHAR(100) NOT NULL,
		precio DECIMAL(10,2) NOT NULL,
		descripcion TEXT NULL,
		activo BOOLEAN NOT NULL DEFAULT TRUE,
		UNIQUE KEY uniq_nombre_servicio (nombre_servicio)
	)`,
	`CREATE TABLE IF NOT EXISTS configuracion_pdf (
		id INT PRIMARY KEY,
		nombre_empresa VARCHAR(255) NOT NULL,
		direccion VARCHAR(255) NOT NULL,
		telefono VARCHAR(50) NOT NULL,
		email VARCHAR(255) NOT NULL,
		titulo_cotizacion VARCHAR(255) NOT NULL,
		descripcion_empresa TEXT NOT NULL,
		terminos_condiciones TEXT NOT NULL,
		pie_pagina VARCHAR(255) NOT NULL,
		validez_dias INT NOT NULL DEFAULT 15,
		color_primario VARCHAR(20) NOT NULL,
		color_secundario VARCHAR(20) NOT NULL,
		logo_url VARCHAR(500) NULL,
		mostrar_logo BOOLEAN NOT NULL DEFAULT FALSE
	)`,
}

// InitSchema creates any missing tables. Safe to run on every startup.
func InitSchema(ctx context.Context, db *sql.DB) error {
	for _, ddl := range schemaDDL {
		if _, err := db.ExecContext(ctx, ddl); err != nil {
			return fmt.Errorf("schema init: %w", err)
		}
	}
	return nil
}
