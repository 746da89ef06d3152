package cmd

type Config struct {
	HTTPPort            string
	BackendBaseURL      string
	BackendBearerToken  string
	BackendGatewayToken string
	StoreKey            string
	SyncSchedule        string
	DBHost              string
	DBPort              string
	DBUser              string
	DBPassword          string
	DBName              string
	DBSslMode           string
}
