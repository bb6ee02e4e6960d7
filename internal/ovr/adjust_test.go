package ovr

import "testing"

func TestAdjust(t *testing.T) {
	type args struct {
		current int
		avg     float64
	}
	tests := []struct {
		name string
		args args
		want int
	}{
		{
			name: "neutral keeps rating",
			args: args{current: 70, avg: 6.0},
			want: 70,
		},
		{
			name: "good match",
			args: args{current: 70, avg: 7.2},
			want: 71,
		},
		{
			name: "great match capped",
			args: args{current: 70, avg: 10},
			want: 72,
		},
		{
			name: "bad match",
			args: args{current: 70, avg: 5.2},
			want: 69,
		},
		{
			name: "awful match capped",
			args: args{current: 70, avg: 1},
			want: 68,
		},
		{
			name: "floor",
			args: args{current: 40, avg: 1},
			want: 40,
		},
		{
			name: "ceiling",
			args: args{current: 99, avg: 10},
			want: 99,
		},
		{
			name: "half point rounds up",
			args: args{current: 70, avg: 6.5},
			want: 71,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Adjust(tt.args.current, tt.args.avg); got != tt.want {
				t.Errorf("Adjust() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFoldAverage(t *testing.T) {
	tests := []struct {
		name     string
		career   float64
		n        int
		matchAvg float64
		want     float64
	}{
		{
			name:     "first rated match",
			career:   0,
			n:        0,
			matchAvg: 7,
			want:     7,
		},
		{
			name:     "second rated match",
			career:   7,
			n:        1,
			matchAvg: 9,
			want:     8,
		},
		{
			name:     "weighted by history",
			career:   6,
			n:        3,
			matchAvg: 10,
			want:     7,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FoldAverage(tt.career, tt.n, tt.matchAvg); got != tt.want {
				t.Errorf("FoldAverage() = %v, want %v", got, tt.want)
			}
		})
	}
}
