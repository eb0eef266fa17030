// Package config loads service configuration from the environment.
//
// A .env file next to the binary is loaded first when present, then
// environment variables override it. The service configures itself from
// PORT, BOT_TOKEN, WEBHOOK_URL and ELEVENLABS_API_KEY plus a handful of
// optional tuning variables.
package config
