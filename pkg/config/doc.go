// Package config loads env-tagged configuration structs with
// github.com/caarlos0/env/v11, reading an optional .env file through
// github.com/joho/godotenv first.
//
// Every package that needs settings owns a small Config struct
// (httpserver.Config, session.Config, account.Config, apiclient.Config, ...)
// and the command wires them together:
//
//	var srvCfg httpserver.Config
//	config.MustLoad(&srvCfg)
//
// Parsed values are cached per type, so repeated loads are cheap and
// consistent. Reset clears the cache in tests.
package config
