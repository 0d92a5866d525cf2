package config

type InternalConfig struct {
	App      App
	JWT      AppJWT
	OpenAI   AppOpenAI
	Report   AppReport
	MongoDB  AppMongoDB
	RabbitMQ AppRabbitMQ
	Minio    AppMinio
}

type App struct {
	Env                        string
	Port                       string
	Version                    string
	Timezone                   string
	EndpointPrefix             string
	MaxRequests                int
	ShutdownTimeoutInSeconds   int
	RequestTimeoutInSeconds    int
	SuperadminAPIKey           string
	GenerateRequestsPerMinute  int
	GenerateBlockTimeInMinutes int
}

type AppJWT struct {
	Secret        string
	ExpTimeInHour int
}

type AppOpenAI struct {
	BaseUrl                 string
	APIKey                  string
	RequestTimeoutInSeconds int
}

type AppReport struct {
	MonthlyQuota   int
	ArchiveEnabled bool
}

type AppMongoDB struct {
	DbName string
}

type AppRabbitMQ struct {
	ReportQueue string
}

type AppMinio struct {
	BucketName string
}
