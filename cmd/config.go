package cmd

type Config struct {
	HTTPPort            string
	WorkerCount         string
	PourerCount         string
	PourerQueueCapacity string
	PourMinMs           string
	PourMaxMs           string
}
