package ports

// RecordSinkPort receives formatted record lines, one per call.
type RecordSinkPort interface {
	CheckWritable() error
	WriteRecord(line string) error
}
