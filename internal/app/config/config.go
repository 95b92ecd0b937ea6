package config

import (
	"clinibook-service/internal/pkg/utils"

	"github.com/joho/godotenv"
)

func init() {
	godotenv.Load()
}

func NewDriverConfig() *DriverConfig {
	return &DriverConfig{
		Redis: Redis{
			Host:     utils.GetEnvString("REDIS_HOST", "localhost"),
			Port:     utils.GetEnvString("REDIS_PORT", "6379"),
			Password: utils.GetEnvString("REDIS_PASSWORD", ""),
		},
		RabbitMQ: RabbitMQ{
			Host:     utils.GetEnvString("RABBITMQ_HOST", "localhost"),
			Port:     utils.GetEnvString("RABBITMQ_PORT", "5672"),
			Username: utils.GetEnvString("RABBITMQ_USERNAME", "guest"),
			Password: utils.GetEnvString("RABBITMQ_PASSWORD", "guest"),
		},
		Minio: Minio{
			Host:     utils.GetEnvString("MINIO_HOST", "localhost"),
			Port:     utils.GetEnvString("MINIO_PORT", "9000"),
			Username: utils.GetEnvString("MINIO_USERNAME", "minioadmin"),
			Password: utils.GetEnvString("MINIO_PASSWORD", "minioadmin"),
			UseSSL:   utils.GetEnvBool("MINIO_USE_SSL", false),
		},
		Logger: Logger{
			Level:               utils.GetEnvString("LOGGER_LEVEL", "debug"),
			OutputFileName:      utils.GetEnvString("LOGGER_OUTPUT_FILENAME", "logger.log"),
			OutputErrorFileName: utils.GetEnvString("LOGGER_OUTPUT_ERROR_FILENAME", "logger_error.log"),
		},
	}
}

func NewInternalConfig() *InternalConfig {
	return &InternalConfig{
		App: App{
			Env:                       utils.GetEnvString("APP_ENV", "development"),
			Port:                      utils.GetEnvString("APP_PORT", ":8080"),
			Version:                   utils.GetEnvString("APP_VERSION", "v1"),
			Timezone:                  utils.GetEnvString("APP_TIMEZONE", "Europe/Paris"),
			EndpointPrefix:            utils.GetEnvString("APP_ENDPOINT_PREFIX", "api"),
			MaxRequests:               utils.GetEnvInt("APP_MAX_REQUESTS", 20),
			ShutdownTimeoutInSeconds:  utils.GetEnvInt("APP_SHUTDOWN_TIMEOUT_IN_SECONDS", 10),
			SessionExpiredTimeInHours: utils.GetEnvInt("APP_SESSION_EXPIRED_TIME_IN_HOURS", 12),
			DraftExpiredTimeInMinutes: utils.GetEnvInt("APP_DRAFT_EXPIRED_TIME_IN_MINUTES", 30),
			NotificationQueue:         utils.GetEnvString("APP_RABBITMQ_NOTIFICATION_QUEUE", "booking-notifications"),
		},
		Clinic: Clinic{
			BaseUrl:                  utils.GetEnvString("CLINIC_BASE_URL", "http://localhost:5000/api"),
			APIToken:                 utils.GetEnvString("CLINIC_API_TOKEN", ""),
			RequestTimeoutInSeconds:  utils.GetEnvInt("CLINIC_REQUEST_TIMEOUT_IN_SECONDS", 10),
			OutboundRequestsPerSec:   utils.GetEnvInt("CLINIC_OUTBOUND_REQUESTS_PER_SECOND", 20),
			OutboundRequestsBurstCap: utils.GetEnvInt("CLINIC_OUTBOUND_REQUESTS_BURST", 40),
		},
		JWT: JWT{
			Secret:        utils.GetEnvString("JWT_SECRET", "anyjwt"),
			ExpTimeInHour: utils.GetEnvInt("JWT_EXP_TIME_IN_HOUR", 12),
		},
		Minio: AppMinio{
			BucketName:                         utils.GetEnvString("MINIO_BUCKET_NAME", "clinibook-referrals"),
			ReferralMaxUploadSizeInMB:          int64(utils.GetEnvInt("MINIO_REFERRAL_MAX_UPLOAD_SIZE_IN_MB", 5)),
			PresignedUrlObjectExpiryTimeInHour: utils.GetEnvInt("MINIO_PRESIGNED_URL_EXPIRY_TIME_IN_HOURS", 24),
		},
	}
}
