// Package retry repeats file-system operations that fail for transient
// reasons, with exponential backoff between attempts.
//
// Removing a spool file right after closing it can fail briefly when a
// virus scanner or indexer still holds the file open, most commonly on
// Windows. The spool retries such removals before giving up.
//
// # Example Usage
//
//	executor := retry.NewExecutor(retry.NewFileErrorClassifier(), retry.NewExponentialBackoff(3))
//	err := executor.Execute(ctx, func(ctx context.Context) error {
//	    return os.Remove(path)
//	})
//
// # Thread Safety
//
// Executor instances are safe for concurrent use. Use WithOnRetry() to create
// independent configurations per goroutine.
package retry
