package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
	"github.com/slighter12/go-lib/database/postgres"
)

const (
	defaultPath               = "."
	defaultMaxRequestBodySize = "100KB"

	defaultDatasetLimit        = 2000
	defaultCatalogLimit        = 50
	defaultCatalogTimeout      = 30 * time.Second
	defaultRecommendationLimit = 10
	defaultRecommendationMax   = 50
	defaultSimilarUsers        = 3
	defaultVoucherSize         = 256
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port               int    `json:"port" yaml:"port"`
		MaxRequestBodySize string `json:"maxRequestBodySize" yaml:"maxRequestBodySize"`
		Timeouts           struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	// Store selects the persistence driver
	Store *StoreConfig `json:"store" yaml:"store"`

	Postgres *postgres.DBConn `json:"postgres" yaml:"postgres" mapstructure:"postgres"`

	// SecretKey.Access signs operator tokens accepted on the admin routes
	SecretKey struct {
		Access string `json:"access" yaml:"access"`
	} `json:"secretKey" yaml:"secretKey"`

	// Catalog configuration for the destination registry
	Catalog *CatalogConfig `json:"catalog" yaml:"catalog"`

	// Recommendation tuning
	Recommendation *RecommendationConfig `json:"recommendation" yaml:"recommendation"`

	// Rewards seeded at startup
	Rewards *RewardsConfig `json:"rewards" yaml:"rewards"`

	// Voucher configuration for redemption QR codes
	Voucher *VoucherConfig `json:"voucher" yaml:"voucher"`

	// PubSub configuration for event publishing
	PubSub *PubSubConfig `json:"pubsub" yaml:"pubsub"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

const (
	StoreDriverMemory   = "memory"
	StoreDriverPostgres = "postgres"
)

// StoreConfig defines which persistence backend holds profiles, interactions and the ledger
type StoreConfig struct {
	// Driver is "memory" or "postgres"
	Driver string `json:"driver" yaml:"driver"`

	// Migrate applies the embedded schema on startup (postgres only)
	Migrate bool `json:"migrate" yaml:"migrate"`
}

const (
	CatalogSourceRNT  = "rnt"
	CatalogSourceBlob = "blob"
)

// CatalogConfig defines where destination records come from
type CatalogConfig struct {
	// Source is "rnt" for the open-data API or "blob" for a JSON snapshot in a bucket
	Source string `json:"source" yaml:"source"`

	// BaseURL of the open-data resource (rnt source)
	BaseURL string `json:"baseUrl" yaml:"baseUrl"`

	// DatasetLimit is passed as $limit to the open-data API
	DatasetLimit int `json:"datasetLimit" yaml:"datasetLimit"`

	// Timeout for a single upstream call
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// Departments kept from the national registry
	Departments []string `json:"departments" yaml:"departments"`

	// DefaultLimit for destination listings
	DefaultLimit int `json:"defaultLimit" yaml:"defaultLimit"`

	// Snapshot is the bucket holding a catalog export (blob source)
	Snapshot *CatalogSnapshotConfig `json:"snapshot" yaml:"snapshot"`

	// Breaker guards the upstream call
	Breaker *BreakerConfig `json:"breaker" yaml:"breaker"`

	// Cache keeps the last good catalog in redis
	Cache *CatalogCacheConfig `json:"cache" yaml:"cache"`
}

// CatalogSnapshotConfig locates a JSON catalog export
type CatalogSnapshotConfig struct {
	// BucketURL, e.g. file:///var/lib/destinos, gs://bucket or mem://
	BucketURL string `json:"bucketUrl" yaml:"bucketUrl"`
	Key       string `json:"key" yaml:"key"`
}

// BreakerConfig mirrors gobreaker settings
type BreakerConfig struct {
	Enabled          bool          `json:"enabled" yaml:"enabled"`
	MaxRequests      uint32        `json:"maxRequests" yaml:"maxRequests"`
	Interval         time.Duration `json:"interval" yaml:"interval"`
	Timeout          time.Duration `json:"timeout" yaml:"timeout"`
	FailureThreshold uint32        `json:"failureThreshold" yaml:"failureThreshold"`
}

// CatalogCacheConfig defines the redis catalog cache
type CatalogCacheConfig struct {
	Enabled  bool          `json:"enabled" yaml:"enabled"`
	Addr     string        `json:"addr" yaml:"addr"`
	Password string        `json:"password" yaml:"password"`
	DB       int           `json:"db" yaml:"db"`
	TTL      time.Duration `json:"ttl" yaml:"ttl"`
	Prefix   string        `json:"prefix" yaml:"prefix"`
}

// RecommendationConfig tunes the hybrid recommender
type RecommendationConfig struct {
	DefaultLimit int `json:"defaultLimit" yaml:"defaultLimit"`
	MaxLimit     int `json:"maxLimit" yaml:"maxLimit"`
	SimilarUsers int `json:"similarUsers" yaml:"similarUsers"`
}

// RewardsConfig lists rewards created at startup when missing
type RewardsConfig struct {
	Seed []RewardSeed `json:"seed" yaml:"seed"`
}

// RewardSeed is one reward created by the startup seed
type RewardSeed struct {
	ID             string     `json:"id" yaml:"id"`
	Title          string     `json:"title" yaml:"title"`
	Description    string     `json:"description" yaml:"description"`
	PointsRequired int        `json:"pointsRequired" yaml:"pointsRequired"`
	Category       string     `json:"category" yaml:"category"`
	PartnerName    string     `json:"partnerName" yaml:"partnerName"`
	PartnerContact string     `json:"partnerContact" yaml:"partnerContact"`
	MaxRedemptions *int       `json:"maxRedemptions" yaml:"maxRedemptions"`
	ExpiresAt      *time.Time `json:"expiresAt" yaml:"expiresAt"`
}

// VoucherConfig defines QR voucher generation configuration
type VoucherConfig struct {
	Size                 int    `json:"size" yaml:"size"`
	ErrorCorrectionLevel string `json:"errorCorrectionLevel" yaml:"errorCorrectionLevel"`
}

// PubSubConfig defines Pub/Sub configuration for event publishing
type PubSubConfig struct {
	// Provider type: "noop", "local" for local HTTP or "google" for Google Pub/Sub
	Provider string `json:"provider" yaml:"provider"`

	// Google Cloud project ID (for google provider)
	ProjectID string `json:"projectId" yaml:"projectId"`

	// Pub/Sub topic ID (for google provider)
	TopicID string `json:"topicId" yaml:"topicId"`

	// Local HTTP endpoint for development (for local provider)
	LocalEndpoint string `json:"localEndpoint" yaml:"localEndpoint"`
}

// LoadWithEnv loads .yaml files through koanf.
func LoadWithEnv[T any](currEnv string, configPath ...string) (*T, error) {
	cfg := new(T)
	koanfInstance := koanf.New(".")

	// Build list of paths to search for config file
	searchPaths := []string{defaultPath}
	if len(configPath) != 0 {
		pwd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, "os.Getwd")
		}
		for _, path := range configPath {
			abs := filepath.Join(pwd, path)
			searchPaths = append(searchPaths, abs)
		}
	}

	// Try to find and load the config file
	var configFile string
	var found bool
	for _, path := range searchPaths {
		candidate := filepath.Join(path, currEnv+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			configFile = candidate
			found = true

			break
		}
	}

	if !found {
		return nil, errors.Errorf("config file %s.yaml not found in any search path", currEnv)
	}

	// Load YAML config file
	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	// Load environment variables
	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			// Convert ENV_VAR_NAME to path and align each segment with existing YAML keys.
			// Example: POSTGRES_SSLMODE -> postgres.sslMode (not postgres.sslmode)
			key := canonicalizeEnvKey(k, existingConfigMap)

			return key, v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	// Unmarshal into the config struct (case-insensitive to match env vars)
	if err := koanfInstance.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
				mapstructure.StringToTimeHookFunc(time.RFC3339),
				mapstructure.StringToSliceHookFunc(","),
			),
			MatchName: func(mapKey, fieldName string) bool {
				// Case-insensitive matching for env var overrides
				return strings.EqualFold(mapKey, fieldName)
			},
		},
	}); err != nil {
		return nil, errors.Wrapf(err, "unmarshal %s config failed", currEnv)
	}

	return cfg, nil
}

func New() (*Config, error) {
	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	if strings.TrimSpace(cfg.HTTP.MaxRequestBodySize) == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}

	applyDefaults(cfg)

	// Build replicas from environment variables (POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, etc.)
	if cfg.Postgres != nil {
		cfg.Postgres.Replicas = buildReplicasFromEnv()
	}

	return cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.Store == nil {
		cfg.Store = &StoreConfig{Driver: StoreDriverMemory}
	}
	if cfg.Store.Driver == "" {
		cfg.Store.Driver = StoreDriverMemory
	}

	if cfg.Catalog == nil {
		cfg.Catalog = &CatalogConfig{}
	}
	if cfg.Catalog.Source == "" {
		cfg.Catalog.Source = CatalogSourceRNT
	}
	if cfg.Catalog.DatasetLimit <= 0 {
		cfg.Catalog.DatasetLimit = defaultDatasetLimit
	}
	if cfg.Catalog.DefaultLimit <= 0 {
		cfg.Catalog.DefaultLimit = defaultCatalogLimit
	}
	if cfg.Catalog.Timeout <= 0 {
		cfg.Catalog.Timeout = defaultCatalogTimeout
	}

	if cfg.Recommendation == nil {
		cfg.Recommendation = &RecommendationConfig{}
	}
	if cfg.Recommendation.DefaultLimit <= 0 {
		cfg.Recommendation.DefaultLimit = defaultRecommendationLimit
	}
	if cfg.Recommendation.MaxLimit < cfg.Recommendation.DefaultLimit {
		cfg.Recommendation.MaxLimit = max(defaultRecommendationMax, cfg.Recommendation.DefaultLimit)
	}
	if cfg.Recommendation.SimilarUsers <= 0 {
		cfg.Recommendation.SimilarUsers = defaultSimilarUsers
	}

	if cfg.Voucher == nil {
		cfg.Voucher = &VoucherConfig{Size: defaultVoucherSize, ErrorCorrectionLevel: "M"}
	}
	if cfg.PubSub == nil {
		cfg.PubSub = &PubSubConfig{Provider: "noop"}
	}
}

func canonicalizeEnvKey(rawKey string, existing map[string]any) string {
	segments := strings.Split(strings.ToLower(rawKey), "_")
	canonical := make([]string, 0, len(segments))
	current := existing

	for _, segment := range segments {
		if segment == "" {
			continue
		}

		if matched, next, ok := findExistingSegment(current, segment); ok {
			canonical = append(canonical, matched)
			current = next
		} else {
			canonical = append(canonical, segment)
			current = nil
		}
	}

	return strings.Join(canonical, ".")
}

func findExistingSegment(current map[string]any, segment string) (matched string, next map[string]any, ok bool) {
	if len(current) == 0 {
		return "", nil, false
	}

	needle := normalizeToken(segment)
	for key, value := range current {
		if normalizeToken(key) != needle {
			continue
		}

		child, _ := value.(map[string]any)

		return key, child, true
	}

	return "", nil, false
}

func normalizeToken(s string) string {
	var normalized strings.Builder
	normalized.Grow(len(s))

	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			continue
		}
		normalized.WriteRune(unicode.ToLower(r))
	}

	return normalized.String()
}

// buildReplicasFromEnv builds the replicas slice from environment variables.
// Environment variable format: POSTGRES_REPLICAS_{index}_{field}
// Example: POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, POSTGRES_REPLICAS_0_USERNAME, POSTGRES_REPLICAS_0_PASSWORD
func buildReplicasFromEnv() []postgres.ConnectionConfig {
	var replicas []postgres.ConnectionConfig

	for i := 0; ; i++ {
		prefix := "POSTGRES_REPLICAS_" + strconv.Itoa(i) + "_"

		host := os.Getenv(prefix + "HOST")
		port := os.Getenv(prefix + "PORT")
		if host == "" || port == "" {
			// No more replicas or incomplete configuration.
			break
		}

		replica := postgres.ConnectionConfig{
			Host:     host,
			Port:     port,
			UserName: os.Getenv(prefix + "USERNAME"),
			Password: os.Getenv(prefix + "PASSWORD"),
		}

		replicas = append(replicas, replica)
	}

	return replicas
}
