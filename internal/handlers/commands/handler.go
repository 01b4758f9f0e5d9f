// Package commands turns text commands into service calls.
// It is transport agnostic: a REPL, a chat bot or a test can feed it lines.
package commands

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strconv"
	"strings"

	"github.com/KirkDiggler/dungeon-forge/internal/domain/equipment"
	"github.com/KirkDiggler/dungeon-forge/internal/domain/loadout"
	forgeerr "github.com/KirkDiggler/dungeon-forge/internal/errors"
	"github.com/KirkDiggler/dungeon-forge/internal/services"
	"github.com/KirkDiggler/dungeon-forge/internal/services/currency"
	"github.com/KirkDiggler/dungeon-forge/internal/services/forge"
)

// Response is what every command produces. Failures carry the error code as Reason.
type Response struct {
	Success bool   `json:"success"`
	Reason  string `json:"reason,omitempty"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
}

type commandFunc func(ctx context.Context, args []string) (*Response, error)

type command struct {
	usage   string
	minArgs int
	run     commandFunc
}

// Handler dispatches text commands to the services
type Handler struct {
	ServiceProvider *services.Provider
	logger          *slog.Logger
	commands        map[string]command
}

// HandlerConfig holds configuration for the command handler
type HandlerConfig struct {
	ServiceProvider *services.Provider
	Logger          *slog.Logger // Optional - defaults to slog.Default()
}

// NewHandler creates a new command handler
func NewHandler(cfg *HandlerConfig) *Handler {
	h := &Handler{
		ServiceProvider: cfg.ServiceProvider,
		logger:          cfg.Logger,
	}
	if h.logger == nil {
		h.logger = slog.Default()
	}

	h.commands = map[string]command{
		"generate":      {usage: "generate <ilvl> [rarity] [slot] [owner]", minArgs: 1, run: h.generate},
		"show":          {usage: "show <id>", minArgs: 1, run: h.show},
		"list":          {usage: "list <owner>", minArgs: 1, run: h.list},
		"reroll":        {usage: "reroll <id> [prefix|suffix] [index]", minArgs: 1, run: h.reroll},
		"add-affix":     {usage: "add-affix <id>", minArgs: 1, run: h.addAffix},
		"reroll-values": {usage: "reroll-values <id>", minArgs: 1, run: h.rerollValues},
		"upgrade":       {usage: "upgrade <id>", minArgs: 1, run: h.upgrade},
		"equip":         {usage: "equip <player> <id>", minArgs: 2, run: h.equip},
		"unequip":       {usage: "unequip <player> <slot>", minArgs: 2, run: h.unequip},
		"rune":          {usage: "rune <player> <skillSlot> <runeId> <level>", minArgs: 4, run: h.bindRune},
		"unbind":        {usage: "unbind <player> <skillSlot>", minArgs: 2, run: h.unbindRune},
		"loadout":       {usage: "loadout <player>", minArgs: 1, run: h.loadout},
		"stats":         {usage: "stats <player>", minArgs: 1, run: h.stats},
		"sources":       {usage: "sources <player>", minArgs: 1, run: h.sources},
		"damage":        {usage: "damage <player> <skill> <level>", minArgs: 3, run: h.damage},
	}
	return h
}

// Handle runs one command line and never returns a Go error
func (h *Handler) Handle(ctx context.Context, line string) *Response {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return failure(forgeerr.CodeInvalidArgument, "empty command")
	}

	name := strings.ToLower(fields[0])
	args := fields[1:]

	if name == "help" {
		return &Response{Success: true, Message: h.helpText()}
	}

	cmd, ok := h.commands[name]
	if !ok {
		return failure(forgeerr.CodeInvalidArgument, fmt.Sprintf("unknown command %q, try help", name))
	}
	if len(args) < cmd.minArgs {
		return failure(forgeerr.CodeInvalidArgument, "usage: "+cmd.usage)
	}

	resp, err := cmd.run(ctx, args)
	if err != nil {
		h.logger.DebugContext(ctx, "command failed", "command", name, "error", err)
		return &Response{
			Success: false,
			Reason:  forgeerr.Reason(err),
			Message: err.Error(),
		}
	}
	return resp
}

func (h *Handler) helpText() string {
	names := make([]string, 0, len(h.commands))
	for name := range h.commands {
		names = append(names, name)
	}
	sort.Strings(names)

	var b strings.Builder
	b.WriteString("commands:\n")
	for _, name := range names {
		b.WriteString("  " + h.commands[name].usage + "\n")
	}
	b.WriteString("  help")
	return b.String()
}

func failure(code forgeerr.Code, message string) *Response {
	return &Response{Success: false, Reason: string(code), Message: message}
}

func success(message string, data any) *Response {
	return &Response{Success: true, Message: message, Data: data}
}

func parseInt(raw, name string) (int, error) {
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, forgeerr.InvalidArgumentf("%s must be a number, got %q", name, raw)
	}
	return v, nil
}

func (h *Handler) generate(ctx context.Context, args []string) (*Response, error) {
	ilvl, err := parseInt(args[0], "item level")
	if err != nil {
		return nil, err
	}

	input := &forge.GenerateInput{ItemLevel: ilvl}
	// optional arguments may come in any order: rarity, slot, then anything else is the owner
	for _, arg := range args[1:] {
		if r, err := equipment.ParseRarity(arg); err == nil && input.Rarity == nil {
			input.Rarity = &r
			continue
		}
		if s, err := equipment.ParseSlot(arg); err == nil && input.Slot == nil {
			input.Slot = &s
			continue
		}
		if input.OwnerID == "" {
			input.OwnerID = arg
			continue
		}
		return nil, forgeerr.InvalidArgumentf("unexpected argument %q", arg)
	}

	instance, err := h.ServiceProvider.ForgeService.GenerateRandomEquipment(ctx, input)
	if err != nil {
		return nil, err
	}
	return success(fmt.Sprintf("forged %s %s", instance.Rarity, instance.Name), instance), nil
}

func (h *Handler) show(ctx context.Context, args []string) (*Response, error) {
	instance, err := h.ServiceProvider.ForgeService.Get(ctx, args[0])
	if err != nil {
		return nil, err
	}
	return success(instance.Name, instance), nil
}

func (h *Handler) list(ctx context.Context, args []string) (*Response, error) {
	owned, err := h.ServiceProvider.ForgeService.ListByOwner(ctx, args[0])
	if err != nil {
		return nil, err
	}
	return success(fmt.Sprintf("%d items", len(owned)), owned), nil
}

func (h *Handler) reroll(ctx context.Context, args []string) (*Response, error) {
	input := &currency.RerollInput{InstanceID: args[0]}
	rest := args[1:]
	if len(rest) > 0 {
		if pos := equipment.AffixPosition(strings.ToLower(rest[0])); pos.IsValid() {
			input.Position = &pos
			rest = rest[1:]
		}
	}
	if len(rest) > 0 {
		idx, err := strconv.Atoi(rest[0])
		if err != nil {
			return nil, forgeerr.InvalidIndexf("index must be a number, got %q", rest[0])
		}
		input.Index = &idx
	}

	result, err := h.ServiceProvider.CurrencyService.RerollOneAffix(ctx, input)
	if err != nil {
		return nil, err
	}
	return currencyResponse(result), nil
}

func (h *Handler) addAffix(ctx context.Context, args []string) (*Response, error) {
	result, err := h.ServiceProvider.CurrencyService.AddRandomAffix(ctx, args[0])
	if err != nil {
		return nil, err
	}
	return currencyResponse(result), nil
}

func (h *Handler) rerollValues(ctx context.Context, args []string) (*Response, error) {
	result, err := h.ServiceProvider.CurrencyService.RerollAffixValues(ctx, args[0])
	if err != nil {
		return nil, err
	}
	return currencyResponse(result), nil
}

func (h *Handler) upgrade(ctx context.Context, args []string) (*Response, error) {
	result, err := h.ServiceProvider.CurrencyService.UpgradeRarity(ctx, args[0])
	if err != nil {
		return nil, err
	}
	return currencyResponse(result), nil
}

func currencyResponse(result *currency.Result) *Response {
	lines := make([]string, 0, len(result.Changes))
	for _, c := range result.Changes {
		if c.OldAffixID == "" {
			lines = append(lines, fmt.Sprintf("+ %s %d", c.NewName, c.NewValue))
			continue
		}
		lines = append(lines, fmt.Sprintf("%s %d -> %s %d", c.OldName, c.OldValue, c.NewName, c.NewValue))
	}
	return &Response{
		Success: result.Success,
		Message: strings.Join(lines, "; "),
		Data:    result,
	}
}

func (h *Handler) equip(ctx context.Context, args []string) (*Response, error) {
	result, err := h.ServiceProvider.LoadoutService.Equip(ctx, args[0], args[1])
	if err != nil {
		return nil, err
	}
	return success(fmt.Sprintf("equipped %s in %s", args[1], result.Slot), result), nil
}

func (h *Handler) unequip(ctx context.Context, args []string) (*Response, error) {
	slot, err := equipment.ParseSlot(args[1])
	if err != nil {
		return nil, forgeerr.WrapWithCode(err, forgeerr.CodeInvalidArgument, "invalid slot")
	}
	l, err := h.ServiceProvider.LoadoutService.Unequip(ctx, args[0], slot)
	if err != nil {
		return nil, err
	}
	return success(fmt.Sprintf("emptied %s", slot), l), nil
}

func (h *Handler) bindRune(ctx context.Context, args []string) (*Response, error) {
	skillSlot, err := parseInt(args[1], "skill slot")
	if err != nil {
		return nil, err
	}
	level, err := parseInt(args[3], "rune level")
	if err != nil {
		return nil, err
	}

	l, err := h.ServiceProvider.LoadoutService.BindRune(ctx, args[0], loadout.RuneBinding{
		SkillSlot: skillSlot,
		RuneID:    args[2],
		Level:     level,
	})
	if err != nil {
		return nil, err
	}
	return success(fmt.Sprintf("bound %s to skill slot %d", args[2], skillSlot), l), nil
}

func (h *Handler) unbindRune(ctx context.Context, args []string) (*Response, error) {
	skillSlot, err := parseInt(args[1], "skill slot")
	if err != nil {
		return nil, err
	}
	l, err := h.ServiceProvider.LoadoutService.UnbindRune(ctx, args[0], skillSlot)
	if err != nil {
		return nil, err
	}
	return success(fmt.Sprintf("cleared skill slot %d", skillSlot), l), nil
}

func (h *Handler) loadout(ctx context.Context, args []string) (*Response, error) {
	l, err := h.ServiceProvider.LoadoutService.Get(ctx, args[0])
	if err != nil {
		return nil, err
	}
	return success(fmt.Sprintf("%d equipped, %d runes", len(l.Equipped), len(l.Runes)), l), nil
}

func (h *Handler) stats(ctx context.Context, args []string) (*Response, error) {
	p, err := h.ServiceProvider.StatsService.CollectStats(ctx, args[0])
	if err != nil {
		return nil, err
	}
	return success("", p), nil
}

func (h *Handler) sources(ctx context.Context, args []string) (*Response, error) {
	sources, err := h.ServiceProvider.StatsService.Sources(ctx, args[0])
	if err != nil {
		return nil, err
	}
	return success(fmt.Sprintf("%d sources", len(sources)), sources), nil
}

func (h *Handler) damage(ctx context.Context, args []string) (*Response, error) {
	level, err := parseInt(args[2], "skill level")
	if err != nil {
		return nil, err
	}

	p, err := h.ServiceProvider.StatsService.CollectStats(ctx, args[0])
	if err != nil {
		return nil, err
	}
	b, err := h.ServiceProvider.DamageService.Calculate(ctx, args[1], level, p)
	if err != nil {
		return nil, err
	}
	return success(fmt.Sprintf("%s hits for %d (%.1f dps)", b.SkillID, b.DisplayDamage, b.DPS), b), nil
}
