package config

import (
	"log"
	"os"
)

// Logger configures the process-wide logger used outside request
// handling (workers, seeding, activity-log failures).
func Logger() {
	log.SetOutput(os.Stdout)
	log.SetPrefix("[aset-api] ")
	log.SetFlags(log.LstdFlags | log.Lshortfile)
}
