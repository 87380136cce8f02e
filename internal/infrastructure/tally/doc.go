// Package tally implements the connector port for Tally Prime's XML/HTTP
// export gateway. Tally exposes an HTTP server (default port 9000) that
// accepts XML envelopes on a single endpoint and returns XML documents;
// this package builds those envelopes, decodes the responses defensively,
// and normalizes the extracted records into the unified schema.
package tally
