package models

type Flags struct {
	Config string `short:"c" long:"config" env:"CONFIG" default:"config.json" description:"Path to the configuration file (.json, .yaml or .yml)"`
}

type IngestFlags struct {
	Config      string `short:"c" long:"config" env:"CONFIG" default:"config.json" description:"Path to the configuration file (.json, .yaml or .yml)"`
	Kind        string `short:"k" long:"kind" env:"KIND" description:"What to ingest: pokemon/move/ability/item/all (prompts when omitted)"`
	Start       int    `short:"s" long:"start" env:"START" description:"First id of the range (defaults per kind)"`
	End         int    `short:"e" long:"end" env:"END" description:"Last id of the range, inclusive (defaults per kind)"`
	MetricsAddr string `long:"metrics-addr" env:"METRICS_ADDR" description:"Serve Prometheus metrics on this address while ingesting"`
	Format      string `long:"format" env:"FORMAT" default:"text" choice:"text" choice:"logfmt" choice:"json" description:"Format of the per-record progress output"`
}
