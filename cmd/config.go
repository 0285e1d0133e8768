package cmd

import "time"

type Config struct {
	HTTPPort           string
	DBHost             string
	DBPort             string
	DBUser             string
	DBPassword         string
	DBName             string
	DBSslMode          string
	RabbitMQURL        string
	RabbitMQExchange   string
	JWTSecret          string
	JWTTTL             time.Duration
	PendingOrderMaxAge time.Duration
}
