package scoring

import "testing"

func TestNormalizeContext(t *testing.T) {
	tests := []struct {
		name string
		in   StackContext
		want StackContext
	}{
		{
			name: "empty context gets all defaults",
			in:   StackContext{},
			want: StackContext{
				ExpectedUsers: 100,
				Budget:        BudgetMedium,
				Complexity:    ComplexityMedium,
				UseCase:       UseCaseStartup,
			},
		},
		{
			name: "valid context passes through untouched",
			in: StackContext{
				ExpectedUsers: 8000,
				Budget:        BudgetHigh,
				Complexity:    ComplexityHigh,
				UseCase:       UseCaseProduction,
				ScalingNeeds:  true,
			},
			want: StackContext{
				ExpectedUsers: 8000,
				Budget:        BudgetHigh,
				Complexity:    ComplexityHigh,
				UseCase:       UseCaseProduction,
				ScalingNeeds:  true,
			},
		},
		{
			name: "negative user count falls back to default",
			in:   StackContext{ExpectedUsers: -5, Budget: BudgetLow, Complexity: ComplexityLow, UseCase: UseCaseSideProject},
			want: StackContext{ExpectedUsers: 100, Budget: BudgetLow, Complexity: ComplexityLow, UseCase: UseCaseSideProject},
		},
		{
			name: "unknown enum values fall back independently",
			in:   StackContext{ExpectedUsers: 500, Budget: "lavish", Complexity: "brutal", UseCase: "moonshot"},
			want: StackContext{ExpectedUsers: 500, Budget: BudgetMedium, Complexity: ComplexityMedium, UseCase: UseCaseStartup},
		},
		{
			name: "one bad field does not reset the others",
			in:   StackContext{ExpectedUsers: 50, Budget: BudgetLow, Complexity: "??", UseCase: UseCaseSideProject},
			want: StackContext{ExpectedUsers: 50, Budget: BudgetLow, Complexity: ComplexityMedium, UseCase: UseCaseSideProject},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizeContext(tt.in)
			if got != tt.want {
				t.Errorf("NormalizeContext() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestNormalizeContextIdempotent(t *testing.T) {
	ctx := NormalizeContext(StackContext{ExpectedUsers: -1, Budget: "x"})
	if again := NormalizeContext(ctx); again != ctx {
		t.Errorf("NormalizeContext not idempotent: %+v != %+v", again, ctx)
	}
}
