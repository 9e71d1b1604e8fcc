package processor

import "context"

// Processor runs transcripts through read, merge, dedup and write
type Processor interface {
	// Process merges one transcript into outputPath
	Process(ctx context.Context, inputPath, outputPath string) error
	// ProcessDir merges every transcript in inputDir into its own file in outputDir
	ProcessDir(ctx context.Context, inputDir, outputDir string) error
	// ProcessNew handles a transcript that appeared in the watched directory
	ProcessNew(ctx context.Context, inputPath string) error
}
