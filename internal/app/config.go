package app

import "time"

// Config описывает настройки запуска приложения. Пустые адреса
// внешних систем означают in-memory реализацию соответствующего
// компонента (для разработки и демонстрации).
type Config struct {
	HTTPAddr    string
	MetricsAddr string

	PostgresDSN string
	RedisAddr   string

	KafkaBrokers []string

	MinioEndpoint  string
	MinioAccessKey string
	MinioSecretKey string
	MinioUseSSL    bool
	BlobBucket     string
	FilesBucket    string

	SessionTTL time.Duration
}

// DefaultConfig возвращает базовые адреса и параметры.
func DefaultConfig() Config {
	return Config{
		HTTPAddr:    ":8080",
		MetricsAddr: ":9090",
		BlobBucket:  "product-images",
		FilesBucket: "file-share",
		SessionTTL:  12 * time.Hour,
	}
}
