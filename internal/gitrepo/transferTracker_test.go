package gitrepo

import (
	"os"
	"path/filepath"
	"testing"
)

func TestTransferTrackerParsesUploadPackSideband(t *testing.T) {
	stats := &TransferStats{}
	tracker := newTransferTracker(stats)

	// Verbatim shape of what upload-pack streams to the client.
	transcript := "Enumerating objects: 1523, done.\n" +
		"Counting objects:  45% (685/1523)\rCounting objects: 100% (1523/1523), done.\n" +
		"Compressing objects: 100% (700/700), done.\n" +
		"Total 1523 (delta 700), reused 1400 (delta 650), pack-reused 0\n"
	if _, err := tracker.Write([]byte(transcript)); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	if stats.ReceivedObjects != 1523 {
		t.Errorf("expected 1523 objects, got %d", stats.ReceivedObjects)
	}
}

func TestTransferTrackerSplitWrites(t *testing.T) {
	stats := &TransferStats{}
	tracker := newTransferTracker(stats)

	full := "Counting objects: 100% (9/9), done.\n" +
		"Total 9 (delta 2), reused 0 (delta 0), pack-reused 0\n"
	for i := 0; i < len(full); i += 7 {
		end := i + 7
		if end > len(full) {
			end = len(full)
		}
		if _, err := tracker.Write([]byte(full[i:end])); err != nil {
			t.Fatalf("Write failed: %v", err)
		}
	}

	if stats.ReceivedObjects != 9 {
		t.Errorf("expected 9 objects, got %d", stats.ReceivedObjects)
	}
}

func TestTransferTrackerCountingWithoutTotal(t *testing.T) {
	stats := &TransferStats{}
	tracker := newTransferTracker(stats)

	// Older daemons report a bare count and no Total line.
	_, _ = tracker.Write([]byte("Counting objects: 1523, done.\n"))

	if stats.ReceivedObjects != 1523 {
		t.Errorf("expected 1523 objects, got %d", stats.ReceivedObjects)
	}
}

func TestTransferTrackerCounterNeverRegresses(t *testing.T) {
	stats := &TransferStats{}
	tracker := newTransferTracker(stats)

	_, _ = tracker.Write([]byte("Total 1000 (delta 300), reused 0 (delta 0), pack-reused 0\n"))
	// A lower later sample must not pull the counter back down.
	_, _ = tracker.Write([]byte("Counting objects: 100% (500/500), done.\n"))

	if stats.ReceivedObjects != 1000 {
		t.Errorf("expected 1000 objects, got %d", stats.ReceivedObjects)
	}
}

func TestTransferTrackerIgnoresOtherLines(t *testing.T) {
	stats := &TransferStats{}
	tracker := newTransferTracker(stats)

	_, _ = tracker.Write([]byte("Enumerating objects: 1523, done.\r"))
	_, _ = tracker.Write([]byte("Compressing objects: 100% (700/700), done.\n"))
	_, _ = tracker.Write([]byte("Resolving deltas: 100% (700/700), done.\n"))

	if stats.ReceivedObjects != 0 || stats.ReceivedBytes != 0 {
		t.Errorf("expected untouched stats, got %+v", *stats)
	}
}

func TestPackfileBytesCountsPacksOnly(t *testing.T) {
	destination := t.TempDir()
	packDir := filepath.Join(destination, ".git", "objects", "pack")
	if err := os.MkdirAll(packDir, 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(packDir, "pack-a.pack"), make([]byte, 1024), 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(packDir, "pack-b.pack"), make([]byte, 512), 0644); err != nil {
		t.Fatal(err)
	}
	// The index is built client-side after the transfer.
	if err := os.WriteFile(filepath.Join(packDir, "pack-a.idx"), make([]byte, 256), 0644); err != nil {
		t.Fatal(err)
	}

	if got := packfileBytes(destination); got != 1536 {
		t.Errorf("expected 1536 bytes, got %d", got)
	}
}

func TestPackfileBytesMissingPackDir(t *testing.T) {
	if got := packfileBytes(t.TempDir()); got != 0 {
		t.Errorf("expected 0 bytes, got %d", got)
	}
}
