package models

import "testing"

func TestAudioFileGroupKey(t *testing.T) {
	tests := []struct {
		name string
		file AudioFile
		want string
	}{
		{
			name: "numbered book and test",
			file: AudioFile{Book: "Cambridge IELTS 15", Test: "2", Section: "3"},
			want: "Cambridge IELTS 15 - Test 2",
		},
		{
			name: "unknown metadata",
			file: AudioFile{Book: "Cambridge IELTS Unknown", Test: "Unknown", Section: "All"},
			want: "Cambridge IELTS Unknown - Test Unknown",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.file.GroupKey(); got != tt.want {
				t.Errorf("GroupKey() = %q, want %q", got, tt.want)
			}
		})
	}
}
