package storage

// Config holds configuration for the object storage client.
type Config struct {
	// Endpoint is the S3-compatible endpoint (host:port or URL).
	Endpoint string `mapstructure:"endpoint" default:""`
	// AccessKey is the storage access key.
	AccessKey string `mapstructure:"access_key" default:""`
	// SecretKey is the storage secret key.
	SecretKey string `mapstructure:"secret_key" default:""`
	// Bucket is the bucket audit reports are written to.
	Bucket string `mapstructure:"bucket" default:"inventory-reports"`
	// Region is the bucket region.
	Region string `mapstructure:"region" default:""`
	// UseSSL enables TLS for the endpoint.
	UseSSL bool `mapstructure:"use_ssl" default:"false"`
	// TimeoutSeconds applies to connection setup and I/O.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"30"`
}
