package constants

const (
	ViperAppEnvKey       = "app.env"
	ViperHTTPAddrKey     = "http.addr"
	ViperAllowOriginsKey = "http.allow_origins"
	ViperPostgresDSNKey  = "postgres.dsn"
	ViperSecretKey       = "secret"
	ViperLogLevelKey     = "log.level"

	ViperKafkaBrokersKey     = "kafka.brokers"
	ViperKafkaTopicPrefixKey = "kafka.topic_prefix"

	ViperBasePriceKey        = "pricing.base_price"
	ViperTotalRoomsKey       = "pricing.total_rooms"
	ViperHighSeasonMonthsKey = "pricing.high_season_months"
	ViperWeekendRuleKey      = "pricing.weekend_rule"
	ViperHolidaysKey         = "pricing.holidays"

	ViperTargetUpliftKey   = "policy.target_uplift"
	ViperEBITDARAddBackKey = "policy.ebitdar_addback"

	ViperHolidaySourceURLKey = "holidays.source_url"
)

const (
	CookieKeySecretToken = "secret_token"
	HeaderRequestID      = "X-Request-ID"
)
