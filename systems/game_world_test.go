package systems

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"ebiten-invaders/config"
	"ebiten-invaders/ecs"
	"ebiten-invaders/entities"
	"ebiten-invaders/spawners"
)

type boxSprite struct{ w, h int }

func (s boxSprite) Width() int  { return s.w }
func (s boxSprite) Height() int { return s.h }

type fakeSprites struct{}

func (fakeSprites) Get(path string) ecs.Sprite {
	if path == "sprites/shot.gif" {
		return boxSprite{5, 10}
	}
	return boxSprite{30, 20}
}

type fakeClock struct{ now time.Duration }

func (c *fakeClock) Now() time.Duration { return c.now }

type textDraw struct {
	text string
	x, y int
}

type fakeRenderer struct {
	clears   int
	presents int
	sprites  int
	texts    []textDraw
}

func (r *fakeRenderer) Clear() {
	r.clears++
	r.sprites = 0
	r.texts = nil
}

func (r *fakeRenderer) DrawSprite(sprite ecs.Sprite, x, y int) { r.sprites++ }

func (r *fakeRenderer) DrawText(text string, x, y int) {
	r.texts = append(r.texts, textDraw{text, x, y})
}

func (r *fakeRenderer) Present() { r.presents++ }

type harness struct {
	world    *GameWorld
	clock    *fakeClock
	renderer *fakeRenderer
	events   *ecs.EventManager
	emitted  map[ecs.EventType]int
}

func newHarness(t *testing.T, cfg *config.Config) *harness {
	t.Helper()
	h := &harness{
		clock:    &fakeClock{},
		renderer: &fakeRenderer{},
		events:   ecs.NewEventManager(),
		emitted:  make(map[ecs.EventType]int),
	}
	for _, et := range []ecs.EventType{EventRoundStarted, EventShotFired, EventAlienKilled, EventPlayerDied, EventPlayerWon} {
		et := et
		h.events.Subscribe(et, func(ecs.Event) { h.emitted[et]++ })
	}
	spawner := spawners.NewEntitySpawner(fakeSprites{}, cfg)
	h.world = NewGameWorld(cfg, spawner, h.renderer, h.clock, h.events, zap.NewNop())
	return h
}

func (h *harness) advance(d time.Duration) {
	h.clock.now += d
	h.world.Frame()
}

func (h *harness) count(kind ecs.Kind) int {
	n := 0
	for _, a := range h.world.Actors() {
		if a.Kind() == kind {
			n++
		}
	}
	return n
}

func (h *harness) shots() []ecs.Actor {
	var shots []ecs.Actor
	for _, a := range h.world.Actors() {
		if a.Kind() == ecs.KindShot {
			shots = append(shots, a)
		}
	}
	return shots
}

func (h *harness) firstAlien(t *testing.T) ecs.Actor {
	t.Helper()
	for _, a := range h.world.Actors() {
		if a.Kind() == ecs.KindAlien {
			return a
		}
	}
	t.Fatal("no alien left")
	return nil
}

func singleAlienConfig(x float64) *config.Config {
	cfg := config.Defaults()
	cfg.Aliens.Rows = 1
	cfg.Aliens.Columns = 1
	cfg.Aliens.OriginX = x
	return cfg
}

func TestNewGameWorld_FrozenUntilKeyPress(t *testing.T) {
	h := newHarness(t, config.Defaults())

	if h.world.State() != StatePaused {
		t.Errorf("State = %v, want paused", h.world.State())
	}
	if h.world.Message() != "" {
		t.Errorf("Message = %q, want empty", h.world.Message())
	}
	if h.world.AlienCount() != 60 {
		t.Errorf("AlienCount = %d, want 60", h.world.AlienCount())
	}
	if h.count(ecs.KindShip) != 1 || h.count(ecs.KindAlien) != 60 {
		t.Errorf("actors = %d ships, %d aliens", h.count(ecs.KindShip), h.count(ecs.KindAlien))
	}

	alien := h.firstAlien(t)
	x := alien.X()
	h.advance(time.Second)

	if alien.X() != x {
		t.Errorf("alien moved while paused: %v -> %v", x, alien.X())
	}
	if h.renderer.sprites != 61 {
		t.Errorf("sprites drawn = %d, want 61", h.renderer.sprites)
	}
	if len(h.renderer.texts) != 1 || h.renderer.texts[0].text != PromptMessage {
		t.Errorf("texts = %v, want only the prompt", h.renderer.texts)
	}
	if h.renderer.clears != 1 || h.renderer.presents != 1 {
		t.Errorf("clears=%d presents=%d, want 1/1", h.renderer.clears, h.renderer.presents)
	}
}

func TestKeyTyped_StartsRound(t *testing.T) {
	h := newHarness(t, config.Defaults())

	h.world.KeyTyped()

	if h.world.State() != StateRunning {
		t.Fatalf("State = %v, want running", h.world.State())
	}
	if h.world.RoundID() == uuid.Nil {
		t.Error("round id not assigned")
	}
	if h.emitted[EventRoundStarted] != 1 {
		t.Errorf("round started events = %d, want 1", h.emitted[EventRoundStarted])
	}

	alien := h.firstAlien(t)
	x := alien.X()
	h.advance(100 * time.Millisecond)

	if alien.X() >= x {
		t.Errorf("alien did not move left: %v -> %v", x, alien.X())
	}
	if len(h.renderer.texts) != 0 {
		t.Errorf("prompt drawn while running: %v", h.renderer.texts)
	}
}

func TestInput_IgnoredWhilePaused(t *testing.T) {
	h := newHarness(t, config.Defaults())

	h.world.SetMoveLeft(true)
	h.world.SetFiring(true)

	if h.world.Input() != (InputState{}) {
		t.Errorf("Input = %+v, want released", h.world.Input())
	}
}

func TestSteering(t *testing.T) {
	tests := []struct {
		name        string
		left, right bool
		want        float64
	}{
		{"none", false, false, 0},
		{"left", true, false, -300},
		{"right", false, true, 300},
		{"both cancel", true, true, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness(t, config.Defaults())
			h.world.KeyTyped()

			h.world.SetMoveLeft(tt.left)
			h.world.SetMoveRight(tt.right)
			h.advance(10 * time.Millisecond)

			if got := h.world.Ship().HorizontalVelocity(); got != tt.want {
				t.Errorf("ship dx = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFire_SpawnsShotAboveShip(t *testing.T) {
	h := newHarness(t, config.Defaults())
	h.world.KeyTyped()

	h.world.SetFiring(true)
	h.world.Frame()

	shots := h.shots()
	if len(shots) != 1 {
		t.Fatalf("shots = %d, want 1", len(shots))
	}
	if shots[0].X() != 380 || shots[0].Y() != 520 {
		t.Errorf("shot at (%v, %v), want (380, 520)", shots[0].X(), shots[0].Y())
	}
	if h.emitted[EventShotFired] != 1 {
		t.Errorf("shot fired events = %d, want 1", h.emitted[EventShotFired])
	}
}

func TestFire_Cooldown(t *testing.T) {
	h := newHarness(t, config.Defaults())
	h.world.KeyTyped()
	h.world.SetFiring(true)

	h.world.Frame() // t=0
	h.advance(100 * time.Millisecond)
	if n := len(h.shots()); n != 1 {
		t.Fatalf("shots at t=100ms = %d, want 1", n)
	}

	h.advance(399 * time.Millisecond)
	if n := len(h.shots()); n != 1 {
		t.Fatalf("shots at t=499ms = %d, want 1", n)
	}

	h.advance(time.Millisecond)
	if n := len(h.shots()); n != 2 {
		t.Errorf("shots at t=500ms = %d, want 2", n)
	}
}

func TestNotifyAlienKilled_LastAlienWins(t *testing.T) {
	h := newHarness(t, singleAlienConfig(300))
	h.world.KeyTyped()
	alien := h.firstAlien(t)

	h.world.NotifyAlienKilled()

	if h.world.State() != StatePaused {
		t.Errorf("State = %v, want paused", h.world.State())
	}
	if h.world.Message() != WinMessage {
		t.Errorf("Message = %q, want %q", h.world.Message(), WinMessage)
	}
	if alien.HorizontalVelocity() != -75 {
		t.Errorf("alien sped up to %v on the winning kill", alien.HorizontalVelocity())
	}
	if h.emitted[EventPlayerWon] != 1 {
		t.Errorf("won events = %d, want 1", h.emitted[EventPlayerWon])
	}
}

func TestNotifyAlienKilled_SpeedsUpRemaining(t *testing.T) {
	h := newHarness(t, config.Defaults())
	h.world.KeyTyped()

	aliens := make([]ecs.Actor, 0, 60)
	for _, a := range h.world.Actors() {
		if a.Kind() == ecs.KindAlien {
			aliens = append(aliens, a)
		}
	}
	// Mix directions to check the sign is kept.
	aliens[1].SetHorizontalVelocity(75)
	before := make([]float64, len(aliens))
	for i, a := range aliens {
		before[i] = a.HorizontalVelocity()
	}
	shipSpeed := h.world.Ship().HorizontalVelocity()

	h.world.NotifyAlienKilled()

	if h.world.AlienCount() != 59 {
		t.Errorf("AlienCount = %d, want 59", h.world.AlienCount())
	}
	if h.world.State() != StateRunning {
		t.Errorf("State = %v, want running", h.world.State())
	}
	for i, a := range aliens {
		if want := before[i] * 1.02; a.HorizontalVelocity() != want {
			t.Errorf("alien %d dx = %v, want %v", i, a.HorizontalVelocity(), want)
		}
	}
	if h.world.Ship().HorizontalVelocity() != shipSpeed {
		t.Error("ship was accelerated")
	}
}

func TestCollision_ShotKillsAlien(t *testing.T) {
	h := newHarness(t, config.Defaults())
	h.world.KeyTyped()
	alien := h.firstAlien(t)

	shot := entities.NewShot(h.world, boxSprite{5, 10}, alien.X()+5, alien.Y()+5, -300, -100)
	h.world.world.Add(shot)

	h.world.world.ResolveCollisions()
	if !h.world.world.PendingRemoval(alien) || !h.world.world.PendingRemoval(shot) {
		t.Fatal("alien and shot should both be marked for removal")
	}
	if n := h.world.world.PendingRemovals(); n != 2 {
		t.Errorf("PendingRemovals = %d, want 2", n)
	}
	h.world.world.ApplyRemovals()

	if h.world.AlienCount() != 59 {
		t.Errorf("AlienCount = %d, want 59", h.world.AlienCount())
	}
	if h.count(ecs.KindAlien) != 59 || h.count(ecs.KindShot) != 0 {
		t.Errorf("aliens=%d shots=%d, want 59/0", h.count(ecs.KindAlien), h.count(ecs.KindShot))
	}
}

func TestCollision_OverlappingShotsKillOnce(t *testing.T) {
	h := newHarness(t, config.Defaults())
	h.world.KeyTyped()
	alien := h.firstAlien(t)

	first := entities.NewShot(h.world, boxSprite{5, 10}, alien.X()+5, alien.Y()+5, -300, -100)
	second := entities.NewShot(h.world, boxSprite{5, 10}, alien.X()+7, alien.Y()+5, -300, -100)
	h.world.world.Add(first)
	h.world.world.Add(second)

	h.world.Frame()

	if h.world.AlienCount() != 59 {
		t.Errorf("AlienCount = %d, want 59", h.world.AlienCount())
	}
	if h.emitted[EventAlienKilled] != 1 {
		t.Errorf("alien killed events = %d, want 1", h.emitted[EventAlienKilled])
	}
	if h.count(ecs.KindAlien) != 59 {
		t.Errorf("aliens = %d, want 59", h.count(ecs.KindAlien))
	}

	// The second shot never hit anything and keeps flying.
	shots := h.shots()
	if len(shots) != 1 || shots[0] != ecs.Actor(second) {
		t.Errorf("shots = %v, want only the second", shots)
	}
}

func TestFleetTurnsAtEdge(t *testing.T) {
	h := newHarness(t, singleAlienConfig(12))
	h.world.KeyTyped()
	alien := h.firstAlien(t)

	// 12 - 75*0.04 = 9: past the edge, the next frame turns it.
	h.advance(40 * time.Millisecond)
	if alien.HorizontalVelocity() != -75 {
		t.Fatalf("turned early: dx = %v", alien.HorizontalVelocity())
	}

	h.advance(10 * time.Millisecond)

	if alien.HorizontalVelocity() != 75 {
		t.Errorf("dx = %v, want 75", alien.HorizontalVelocity())
	}
	if alien.Y() != 60 {
		t.Errorf("Y = %v, want 60", alien.Y())
	}
}

func TestFleetTurnsTogether(t *testing.T) {
	cfg := singleAlienConfig(12)
	cfg.Aliens.Columns = 2
	h := newHarness(t, cfg)
	h.world.KeyTyped()

	var aliens []ecs.Actor
	for _, a := range h.world.Actors() {
		if a.Kind() == ecs.KindAlien {
			aliens = append(aliens, a)
		}
	}
	if len(aliens) != 2 || aliens[1].X() != 62 {
		t.Fatalf("fleet = %d aliens, second at %v", len(aliens), aliens[1].X())
	}

	// Only the first alien crosses the left edge.
	h.advance(40 * time.Millisecond)
	h.advance(10 * time.Millisecond)

	if aliens[1].X() < 10 {
		t.Fatalf("second alien reached the edge too: x = %v", aliens[1].X())
	}
	for i, a := range aliens {
		if a.HorizontalVelocity() != 75 {
			t.Errorf("alien %d dx = %v, want 75", i, a.HorizontalVelocity())
		}
		if a.Y() != 60 {
			t.Errorf("alien %d Y = %v, want 60", i, a.Y())
		}
	}
}

func TestInvasionKillsPlayer(t *testing.T) {
	cfg := singleAlienConfig(5)
	cfg.Aliens.OriginY = 565
	h := newHarness(t, cfg)
	h.world.KeyTyped()

	h.advance(10 * time.Millisecond)

	if h.world.State() != StatePaused || h.world.Message() != DeathMessage {
		t.Errorf("State = %v, Message = %q; want paused with death message", h.world.State(), h.world.Message())
	}
}

func TestDeath_PausesAndAbsorbsOneKey(t *testing.T) {
	h := newHarness(t, config.Defaults())
	h.world.KeyTyped()
	h.world.SetMoveLeft(true)
	h.world.SetFiring(true)

	h.world.NotifyPlayerDied()
	h.world.NotifyPlayerDied()

	if h.world.State() != StatePaused || h.world.Message() != DeathMessage {
		t.Fatalf("State = %v, Message = %q", h.world.State(), h.world.Message())
	}
	if h.emitted[EventPlayerDied] != 1 {
		t.Errorf("died events = %d, want 1", h.emitted[EventPlayerDied])
	}
	if h.world.Input() != (InputState{}) {
		t.Errorf("Input = %+v, want released on death", h.world.Input())
	}

	h.world.Frame()
	if len(h.renderer.texts) != 2 || h.renderer.texts[0].text != DeathMessage || h.renderer.texts[0].y != 250 {
		t.Errorf("texts = %v, want death message then prompt", h.renderer.texts)
	}
	if h.count(ecs.KindShot) != 0 {
		t.Error("fired while paused")
	}

	round := h.world.RoundID()
	h.world.KeyTyped()
	if h.world.State() != StatePaused {
		t.Fatal("first key after death should be absorbed")
	}
	h.world.KeyTyped()
	if h.world.State() != StateRunning {
		t.Fatal("second key should start a new round")
	}
	if h.world.RoundID() == round {
		t.Error("new round kept the old id")
	}
	if h.world.AlienCount() != 60 {
		t.Errorf("AlienCount = %d, want 60", h.world.AlienCount())
	}
}

func TestStartRound_Idempotent(t *testing.T) {
	h := newHarness(t, config.Defaults())

	snapshot := func() []float64 {
		var out []float64
		for _, a := range h.world.Actors() {
			out = append(out, float64(a.Kind()), a.X(), a.Y(), a.HorizontalVelocity())
		}
		return out
	}

	h.world.StartRound()
	h.world.SetMoveRight(true)
	h.world.SetFiring(true)
	h.advance(250 * time.Millisecond)
	h.world.NotifyAlienKilled()

	h.world.StartRound()
	first := snapshot()
	firstCount := h.world.AlienCount()
	firstInput := h.world.Input()

	h.world.StartRound()
	second := snapshot()

	if len(first) != len(second) {
		t.Fatalf("layout sizes differ: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("layout differs at %d: %v vs %v", i, first[i], second[i])
		}
	}
	if firstCount != 60 || h.world.AlienCount() != 60 {
		t.Errorf("alien counts = %d/%d, want 60", firstCount, h.world.AlienCount())
	}
	if firstInput != (InputState{}) || h.world.Input() != (InputState{}) {
		t.Error("input not released on reset")
	}
	if h.world.hasFired {
		t.Error("fire timer not reset")
	}
}

func TestInputState_Direction(t *testing.T) {
	tests := []struct {
		in   InputState
		want int
	}{
		{InputState{}, 0},
		{InputState{Left: true}, -1},
		{InputState{Right: true}, 1},
		{InputState{Left: true, Right: true}, 0},
		{InputState{Left: true, Right: true, Fire: true}, 0},
	}
	for _, tt := range tests {
		if got := tt.in.Direction(); got != tt.want {
			t.Errorf("%+v.Direction() = %d, want %d", tt.in, got, tt.want)
		}
	}
}
