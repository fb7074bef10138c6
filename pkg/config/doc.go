// Package config loads the validation engine's process-wide defaults from
// environment variables, wrapping github.com/joho/godotenv for optional
// .env files and github.com/caarlos0/env/v11 for struct parsing.
//
// # Usage
//
//	settings, err := config.Load(".env")
//	if err != nil {
//		return err
//	}
//	settings.Apply() // installs the ambient locale
//
//	res := kova.TryValidate(input, v, settings.Options()...)
package config
