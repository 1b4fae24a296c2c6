package life

import (
	"fmt"
	"sort"
	"strings"
)

// Apply runs one action against the player. Rejections leave the player
// untouched; every mutating path keeps the aggregate invariants (clamped
// vitals, non-negative money and holdings). The switch is exhaustive over
// ActionKind; transports must map unknown tags to a rejection before calling.
func Apply(p *Player, req ActionRequest, prices PriceView, rng Rand) Outcome {
	if p.Dead() {
		return reject(DeathNotice)
	}

	switch req.Kind {
	case ActionStatus:
		return ok("Your status\n\n" + RenderStatus(p))
	case ActionInventory:
		return ok(renderInventory(p))
	case ActionWork:
		return doWork(p, rng)
	case ActionChooseJob:
		return doChooseJob(p, req.JobName)
	case ActionEatInventory:
		return doEatInventory(p)
	case ActionEatCafe:
		return doEatCafe(p)
	case ActionSleep:
		return doSleep(p)
	case ActionBuyItem:
		return doBuyItem(p, req.Item)
	case ActionRent:
		return doRent(p, req.RentTier)
	case ActionBankDeposit:
		return doBankDeposit(p, req.Amount)
	case ActionBankWithdraw:
		return doBankWithdraw(p, req.Amount)
	case ActionBankDepositAll:
		if p.Cash <= 0 {
			return reject("Nothing to deposit.")
		}
		return doBankDeposit(p, p.Cash)
	case ActionBankWithdrawAll:
		if p.Bank <= 0 {
			return reject("Nothing to withdraw.")
		}
		return doBankWithdraw(p, p.Bank)
	case ActionCity:
		return doCity(p, rng)
	case ActionEvent:
		return doEvent(p, rng)
	case ActionBusinessBuy:
		return doBusinessBuy(p, req.BusinessID)
	case ActionBusinessUpgrade:
		return doBusinessUpgrade(p, req.BusinessID)
	case ActionAssetBuy:
		return doAssetBuy(p, req.Symbol, req.Amount, prices)
	case ActionAssetSell:
		return doAssetSell(p, req.Symbol, req.Fraction, prices)
	default:
		return reject("Unknown option.")
	}
}

// RenderStatus is the status block appended to every action result.
func RenderStatus(p *Player) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Location: %s\n", p.Location)
	fmt.Fprintf(&b, "Day: %d\n", p.Day)
	fmt.Fprintf(&b, "Job: %s\n", p.Job)
	fmt.Fprintf(&b, "Level: %d (XP %d/%d)\n\n", p.Level, p.XP, XPThreshold(p.Level))
	fmt.Fprintf(&b, "Cash: %d\n", p.Cash)
	fmt.Fprintf(&b, "Bank: %d\n\n", p.Bank)
	fmt.Fprintf(&b, "Health: %d/%d\n", p.Vitals.Health, MaxVital)
	fmt.Fprintf(&b, "Hunger: %d/%d\n", p.Vitals.Hunger, MaxVital)
	fmt.Fprintf(&b, "Energy: %d/%d\n", p.Vitals.Energy, MaxVital)
	fmt.Fprintf(&b, "Mood: %d/%d\n", p.Vitals.Mood, MaxVital)
	fmt.Fprintf(&b, "Stress: %d/%d", p.Vitals.Stress, MaxVital)
	return b.String()
}

func renderInventory(p *Player) string {
	items := make([]string, 0, len(p.Inventory))
	for item := range p.Inventory {
		items = append(items, item)
	}
	sort.Strings(items)
	var b strings.Builder
	b.WriteString("Inventory")
	for _, item := range items {
		fmt.Fprintf(&b, "\n- %s: %d", item, p.Inventory[item])
	}
	return b.String()
}

// AvailableActions lists what the transport should render next. A dead player
// can only reset.
func AvailableActions(p *Player) []ActionKind {
	if p.Dead() {
		return nil
	}
	return []ActionKind{
		ActionStatus, ActionInventory,
		ActionWork, ActionChooseJob,
		ActionEatInventory, ActionEatCafe,
		ActionBuyItem, ActionRent,
		ActionBankDeposit, ActionBankWithdraw, ActionBankDepositAll, ActionBankWithdrawAll,
		ActionCity, ActionSleep, ActionEvent,
		ActionBusinessBuy, ActionBusinessUpgrade,
		ActionAssetBuy, ActionAssetSell,
	}
}
