// Package testutil provides test-data helpers for treekit packages:
// deterministic random line generation and on-disk test files sized like the
// inputs the streaming pipeline is built for (100k lines, 10k chars each).
package testutil
