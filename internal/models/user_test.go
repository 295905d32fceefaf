package models

import "testing"

func TestRecalcPercent(t *testing.T) {
	tests := []struct {
		name          string
		videosWatched int
		totalVideos   int
		wantPercent   int
		wantCompleted bool
	}{
		{"unstarted", 0, 3, 0, false},
		{"one of three", 1, 3, 33, false},
		{"two of three", 2, 3, 67, false},
		{"all watched", 3, 3, 100, true},
		{"zero total", 0, 0, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tp := &TopicProgress{VideosWatched: tt.videosWatched, TotalVideos: tt.totalVideos}
			tp.RecalcPercent()
			if tp.Percent != tt.wantPercent {
				t.Errorf("Percent = %v, want %v", tp.Percent, tt.wantPercent)
			}
			if tp.Completed != tt.wantCompleted {
				t.Errorf("Completed = %v, want %v", tp.Completed, tt.wantCompleted)
			}
		})
	}
}

func TestNewTopicProgress(t *testing.T) {
	tp := NewTopicProgress()
	if tp.TotalVideos != VideosPerTopic {
		t.Errorf("TotalVideos = %v, want %v", tp.TotalVideos, VideosPerTopic)
	}
	if tp.VideosWatched != 0 || tp.Completed || tp.Percent != 0 || tp.TimeSpent != 0 {
		t.Error("new topic progress should be zeroed")
	}
	if tp.LastAccessed != nil {
		t.Error("LastAccessed should start nil")
	}
}

func TestNextSeq(t *testing.T) {
	doc := NewDocument()
	if got := doc.NextSeq(); got != 1 {
		t.Errorf("NextSeq() = %v, want 1", got)
	}

	doc.Users["first"] = &User{Username: "first", Seq: 1}
	if got := doc.NextSeq(); got != 2 {
		t.Errorf("NextSeq() = %v, want 2", got)
	}
}
