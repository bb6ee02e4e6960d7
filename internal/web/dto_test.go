package web

import (
	"testing"

	"github.com/google/uuid"
)

func Test_createPlayer_Validate(t *testing.T) {
	valid := createPlayer{
		Name:     "Lucho",
		Position: "MED",
		Pac:      70, Sho: 65, Pas: 72, Dri: 68, Def: 55, Phy: 60,
	}
	tests := []struct {
		name    string
		mutate  func(*createPlayer)
		wantErr bool
	}{
		{
			name:    "ok",
			mutate:  func(*createPlayer) {},
			wantErr: false,
		},
		{
			name:    "missing name",
			mutate:  func(c *createPlayer) { c.Name = "" },
			wantErr: true,
		},
		{
			name:    "bad position",
			mutate:  func(c *createPlayer) { c.Position = "CAM" },
			wantErr: true,
		},
		{
			name:    "attribute too low",
			mutate:  func(c *createPlayer) { c.Pac = 0 },
			wantErr: true,
		},
		{
			name:    "attribute too high",
			mutate:  func(c *createPlayer) { c.Phy = 100 },
			wantErr: true,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			req := valid
			tt.mutate(&req)
			if err := req.Validate(); (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func Test_submitEvaluation_Validate(t *testing.T) {
	tests := []struct {
		name    string
		eval    submitEvaluation
		wantErr bool
	}{
		{
			name: "ok",
			eval: submitEvaluation{
				MatchID:     uuid.NameSpaceDNS,
				EvaluatorID: uuid.NameSpaceURL,
				PlayerID:    uuid.NameSpaceOID,
			},
			wantErr: false,
		},
		{
			name: "missing match",
			eval: submitEvaluation{
				EvaluatorID: uuid.NameSpaceURL,
				PlayerID:    uuid.NameSpaceOID,
			},
			wantErr: true,
		},
		{
			name: "missing evaluator",
			eval: submitEvaluation{
				MatchID:  uuid.NameSpaceDNS,
				PlayerID: uuid.NameSpaceOID,
			},
			wantErr: true,
		},
		{
			name: "self evaluation",
			eval: submitEvaluation{
				MatchID:     uuid.NameSpaceDNS,
				EvaluatorID: uuid.NameSpaceURL,
				PlayerID:    uuid.NameSpaceURL,
			},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if err := tt.eval.Validate(); (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
