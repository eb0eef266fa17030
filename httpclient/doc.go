// Package httpclient provides the outbound HTTP layer for the transcription
// relay: a configurable client with typed requests and responses, API-key
// authentication, multipart/form-data encoding, status-code classification
// into typed errors, and an in-memory downloader with a size guard.
//
// # Usage
//
//	client, _ := httpclient.New(httpclient.Config{
//		BaseURL: "https://api.elevenlabs.io",
//		Auth:    httpclient.APIKeyAuthHeader(key, "xi-api-key"),
//	})
//	resp, err := client.Do(ctx, httpclient.Request{
//		Method: http.MethodPost,
//		Path:   "/v1/speech-to-text",
//		Body:   &httpclient.MultipartBody{...},
//	})
package httpclient
