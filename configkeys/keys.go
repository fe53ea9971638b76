package configkeys

const (
	delimiter = "."

	ConfigPrefix = "microcache"

	ConfigExpirationPrefix = ConfigPrefix + delimiter + "expiration"

	ConfigExpirationAbsoluteTTL = ConfigExpirationPrefix + delimiter + "absolute_ttl"
	ConfigExpirationAccessTTL   = ConfigExpirationPrefix + delimiter + "access_ttl"
	ConfigExpirationHitCount    = ConfigExpirationPrefix + delimiter + "hit_count"

	ConfigStorePrefix = ConfigPrefix + delimiter + "store"

	ConfigStoreName         = ConfigStorePrefix + delimiter + "name"
	ConfigStoreShards       = ConfigStorePrefix + delimiter + "shards"
	ConfigStoreSingleFlight = ConfigStorePrefix + delimiter + "single_flight"

	ConfigJanitorPrefix = ConfigPrefix + delimiter + "janitor"

	ConfigJanitorInterval = ConfigJanitorPrefix + delimiter + "interval"
)
