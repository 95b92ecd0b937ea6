package config

import (
	"github.com/go-chi/chi/v5"
	"github.com/minio/minio-go/v7"
	"github.com/rabbitmq/amqp091-go"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"go.uber.org/zap"
)

type (
	Bootstrap struct {
		Router         *chi.Mux
		Redis          *redis.Client
		RabbitMQ       *amqp091.Connection
		Minio          *minio.Client
		Logger         *zap.Logger
		RequestLogger  *logrus.Logger
		DriverConfig   *DriverConfig
		InternalConfig *InternalConfig
	}

	DriverConfig struct {
		Redis    Redis
		RabbitMQ RabbitMQ
		Minio    Minio
		Logger   Logger
	}

	Redis struct {
		Host     string
		Port     string
		Password string
	}

	RabbitMQ struct {
		Host     string
		Port     string
		Username string
		Password string
	}

	Minio struct {
		Host     string
		Port     string
		Username string
		Password string
		UseSSL   bool
	}

	Logger struct {
		Level               string
		OutputFileName      string
		OutputErrorFileName string
	}

	InternalConfig struct {
		App    App
		Clinic Clinic
		JWT    JWT
		Minio  AppMinio
	}

	App struct {
		Env                       string
		Port                      string
		Version                   string
		Timezone                  string
		EndpointPrefix            string
		MaxRequests               int
		ShutdownTimeoutInSeconds  int
		SessionExpiredTimeInHours int
		DraftExpiredTimeInMinutes int
		NotificationQueue         string
	}

	Clinic struct {
		BaseUrl                  string
		APIToken                 string
		RequestTimeoutInSeconds  int
		OutboundRequestsPerSec   int
		OutboundRequestsBurstCap int
	}

	JWT struct {
		Secret        string
		ExpTimeInHour int
	}

	AppMinio struct {
		BucketName                         string
		ReferralMaxUploadSizeInMB          int64
		PresignedUrlObjectExpiryTimeInHour int
	}
)
