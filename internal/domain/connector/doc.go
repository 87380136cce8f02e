// Package connector contains the Connector bounded context.
// This context defines the source-agnostic contracts for ERP data connectors
// that extract records from external accounting systems and normalize them
// into the platform's unified schema.
//
// Key concepts:
//   - ErpConnector: Port interface for ERP source connectors (Tally, ...)
//   - Extractor: Pulls one category of raw records from the source
//   - Transformer: Maps raw records to unified records, isolating failures
//   - RawRecord / UnifiedRecord: Records before/after normalization
//
// Design Pattern: Ports & Adapters
//   - Ports (interfaces) are defined here in the domain layer
//   - Adapters (Tally XML gateway implementation) are in the infrastructure layer
package connector
