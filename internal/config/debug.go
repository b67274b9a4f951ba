package config

import "os"

func IsDebug() bool {
	return os.Getenv("SKIPPER_DEBUG") == "1"
}
