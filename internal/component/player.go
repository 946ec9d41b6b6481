// internal/component/player.go
package component

import "errors"

// PlayerStats — экономика игрока: деньги, жизни и номер текущей волны.
type PlayerStats struct {
	Money       int
	Lives       int
	CurrentWave int
}

// ErrNegativeAmount возвращается при попытке операции с отрицательной суммой.
var ErrNegativeAmount = errors.New("amount must not be negative")

// NewPlayerStats создаёт экономику с проверкой стартовых значений.
func NewPlayerStats(money, lives int) (*PlayerStats, error) {
	if money < 0 {
		return nil, errors.New("starting money must not be negative")
	}
	if lives <= 0 {
		return nil, errors.New("player must start with at least one life")
	}
	return &PlayerStats{Money: money, Lives: lives}, nil
}

// GainMoney зачисляет награду. Отрицательная сумма — ошибка.
func (p *PlayerStats) GainMoney(amount int) error {
	if amount < 0 {
		return ErrNegativeAmount
	}
	p.Money += amount
	return nil
}

// CanAfford проверяет, хватает ли денег на покупку.
func (p *PlayerStats) CanAfford(cost int) bool {
	return cost <= p.Money
}

// SpendMoney списывает стоимость покупки. Возвращает false,
// если денег не хватает.
func (p *PlayerStats) SpendMoney(cost int) (bool, error) {
	if cost < 0 {
		return false, ErrNegativeAmount
	}
	if cost > p.Money {
		return false, nil
	}
	p.Money -= cost
	return true, nil
}

// LoseLives отнимает жизни, не опускаясь ниже нуля.
func (p *PlayerStats) LoseLives(amount int) error {
	if amount < 0 {
		return ErrNegativeAmount
	}
	p.Lives -= amount
	if p.Lives < 0 {
		p.Lives = 0
	}
	return nil
}

// IsAlive сообщает, остались ли у игрока жизни.
func (p *PlayerStats) IsAlive() bool {
	return p.Lives > 0
}

// StartWave фиксирует номер начавшейся волны.
func (p *PlayerStats) StartWave(number int) {
	p.CurrentWave = number
}
