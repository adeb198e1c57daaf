package config

import "strings"

const (
	delimiter = "."

	DemoPrefix = "demo"

	DemoFrom       = DemoPrefix + delimiter + "from"
	DemoTo         = DemoPrefix + delimiter + "to"
	DemoWorkers    = DemoPrefix + delimiter + "workers"
	DemoBufferSize = DemoPrefix + delimiter + "buffer_size"

	LogPrefix = "log"

	LogLevel = LogPrefix + delimiter + "level"
)

const envPrefix = "PARTITIONS"

// EnvVar returns the environment variable for a dotted key,
// e.g. demo.buffer_size → PARTITIONS_DEMO_BUFFER_SIZE.
func EnvVar(key string) string {
	return envPrefix + "_" + strings.ToUpper(strings.ReplaceAll(key, delimiter, "_"))
}
