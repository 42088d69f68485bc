package config

type App struct {
	Port          string `env:"APP_PORT" default:"8080"`
	DatabaseURL   string `env:"DATABASE_URL,required"`
	JWTSecret     string `env:"JWT_SECRET,required"`
	ReceiptAPIURL string `env:"RECEIPT_API_URL"`
	ReceiptAPIKey string `env:"RECEIPT_API_KEY"`
	UploadDir     string `env:"UPLOAD_DIR" default:"./uploads"`
	Env           string `env:"APP_ENV" default:"dev"`
}
