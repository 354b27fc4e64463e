package schema

// Custom string types for type safety.
type (
	// OutputMode represents the format of the output.
	OutputMode string

	// DatabaseBackend represents the database backend for run tracking.
	DatabaseBackend string

	// PredictionsFormat represents the encoding of a predictions file.
	PredictionsFormat string

	// SplitName identifies a dataset partition.
	SplitName string
)

// All output modes supported.
const (
	CSVOut     OutputMode = "csv"
	TextOut    OutputMode = "text" // default
	JSONOut    OutputMode = "json"
	ParquetOut OutputMode = "parquet"
)

// All results backends supported.
const (
	SQLiteBackend     DatabaseBackend = "sqlite" // default
	MySQLBackend      DatabaseBackend = "mysql"
	PostgreSQLBackend DatabaseBackend = "postgresql"
	NoneBackend       DatabaseBackend = "none"
)

// All predictions encodings supported.
const (
	AutoPredictions    PredictionsFormat = "auto" // default, detect from extension
	CSVPredictions     PredictionsFormat = "csv"
	JSONLPredictions   PredictionsFormat = "jsonl"
	ParquetPredictions PredictionsFormat = "parquet"
)

// All dataset partitions produced by prepare.
const (
	TrainSplit SplitName = "train"
	ValidSplit SplitName = "valid"
	TestSplit  SplitName = "test"
)

// ValidOutputModes lists all valid output modes.
var ValidOutputModes = map[OutputMode]struct{}{
	CSVOut:     {},
	TextOut:    {},
	JSONOut:    {},
	ParquetOut: {},
}

// ValidDatabaseBackends lists all valid results backends.
var ValidDatabaseBackends = map[DatabaseBackend]struct{}{
	SQLiteBackend:     {},
	MySQLBackend:      {},
	PostgreSQLBackend: {},
	NoneBackend:       {},
}

// ValidPredictionsFormats lists all valid predictions encodings.
var ValidPredictionsFormats = map[PredictionsFormat]struct{}{
	AutoPredictions:    {},
	CSVPredictions:     {},
	JSONLPredictions:   {},
	ParquetPredictions: {},
}
