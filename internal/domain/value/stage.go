package value

import (
	"fmt"
	"slices"
	"strings"

	"git.appkode.ru/pub/go/failure"

	"crm_pipeline/pkg/errcodes"
)

// Stage — позиция сделки в воронке. Набор стадий закрыт.
type Stage string

const (
	StageLead        Stage = "Lead"
	StageQualified   Stage = "Qualified"
	StageProposal    Stage = "Proposal"
	StageNegotiation Stage = "Negotiation"
	StageClosedWon   Stage = "Closed Won"
	StageClosedLost  Stage = "Closed Lost"
)

// Stages возвращает колонки доски в порядке отображения.
// Closed Lost — валидная стадия, но колонкой не является.
func Stages() []Stage {
	return []Stage{StageLead, StageQualified, StageProposal, StageNegotiation, StageClosedWon}
}

// AllStages возвращает весь закрытый набор стадий.
func AllStages() []Stage {
	return append(Stages(), StageClosedLost)
}

// ParseStage строго разбирает название стадии. Неизвестное название —
// ошибка входных данных с кодом InvalidStage.
func ParseStage(s string) (Stage, error) {
	stage := Stage(s)
	if !stage.IsValid() {
		return "", failure.NewInvalidArgumentError(
			fmt.Sprintf("unknown stage %q", s),
			failure.WithCode(errcodes.InvalidStage),
		)
	}

	return stage, nil
}

// NormalizeStage сопоставляет название со стадией без учёта регистра и
// крайних пробелов: "closed won" даёт Closed Won. Синонимы ("Won") не
// распознаются.
func NormalizeStage(s string) (Stage, bool) {
	name := strings.TrimSpace(s)

	for _, stage := range AllStages() {
		if strings.EqualFold(stage.String(), name) {
			return stage, true
		}
	}

	return "", false
}

func (s Stage) String() string {
	return string(s)
}

func (s Stage) IsValid() bool {
	return slices.Contains(AllStages(), s)
}

// IsColumn сообщает, отображается ли стадия колонкой на доске.
func (s Stage) IsColumn() bool {
	return slices.Contains(Stages(), s)
}

// IsActive — сделка ещё открыта и входит в сумму воронки.
func (s Stage) IsActive() bool {
	return s.IsValid() && s != StageClosedWon && s != StageClosedLost
}
