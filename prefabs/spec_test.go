package prefabs

import (
	"os"
	"path/filepath"
	"testing"
)

func TestEmbeddedSpecsDecode(t *testing.T) {
	player, err := LoadPlayerSpec()
	if err != nil {
		t.Fatalf("player: %v", err)
	}
	if player.Speed <= 0 || player.Collider.Radius != 2.5 || player.HideSeconds != 0.25 {
		t.Fatalf("unexpected player spec %+v", player)
	}

	enemy, err := LoadEnemySpec()
	if err != nil {
		t.Fatalf("enemy: %v", err)
	}
	if enemy.Collider.Radius != 2.5 || enemy.Script == "" {
		t.Fatalf("unexpected enemy spec %+v", enemy)
	}

	spawner, err := LoadSpawnerSpec()
	if err != nil {
		t.Fatalf("spawner: %v", err)
	}
	if spawner.MinDistance != 20 || spawner.MaxDistance != 100 || spawner.DangerSeconds != 0.5 {
		t.Fatalf("unexpected spawner spec %+v", spawner)
	}
	if spawner.MinPeriod <= 0 || spawner.MinPeriod > spawner.BasePeriod {
		t.Fatalf("spawner periods out of order %+v", spawner)
	}

	lighting, err := LoadLightingSpec()
	if err != nil {
		t.Fatalf("lighting: %v", err)
	}
	if !lighting.GlobalLight || lighting.LightDistance != 10 {
		t.Fatalf("unexpected lighting spec %+v", lighting)
	}

	transition, err := LoadTransitionSpec()
	if err != nil {
		t.Fatalf("transition: %v", err)
	}
	if transition.FadeSpeed != 3.0 {
		t.Fatalf("unexpected fade speed %v", transition.FadeSpeed)
	}

	game, err := LoadGameSpec()
	if err != nil {
		t.Fatalf("game: %v", err)
	}
	if len(game.IntroText) == 0 || game.IntroText[0] != "In darkness you perish" || game.IntroSeconds != 5 {
		t.Fatalf("unexpected game spec %+v", game)
	}

	if _, err := LoadCameraSpec(); err != nil {
		t.Fatalf("camera: %v", err)
	}
}

func TestLoadPrefersDisk(t *testing.T) {
	dir := t.TempDir()
	if err := os.MkdirAll(filepath.Join(dir, "prefabs"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "prefabs", CameraFile), []byte("zoom: 3\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Chdir(dir)

	spec, err := LoadCameraSpec()
	if err != nil {
		t.Fatal(err)
	}
	if spec.Zoom != 3 {
		t.Fatalf("expected disk override, got zoom %v", spec.Zoom)
	}
}

func TestLoadSpecErrors(t *testing.T) {
	if _, err := LoadSpec[CameraSpec]("missing.yaml"); err == nil {
		t.Fatal("expected error for a missing prefab")
	}
}

func TestLoadScript(t *testing.T) {
	for _, name := range []string{"enemy.tengo", "scripts/enemy.tengo", "prefabs/scripts/enemy.tengo"} {
		t.Run(name, func(t *testing.T) {
			data, err := LoadScript(name)
			if err != nil {
				t.Fatalf("load: %v", err)
			}
			if len(data) == 0 {
				t.Fatal("empty script")
			}
		})
	}
}

func TestCleanPaths(t *testing.T) {
	tests := []struct {
		fn   func(string) string
		in   string
		want string
	}{
		{cleanPrefabPath, "prefabs/player.yaml", "player.yaml"},
		{cleanPrefabPath, "/abs/contour/prefabs/enemy.yaml", "enemy.yaml"},
		{cleanScriptPath, "enemy.tengo", "scripts/enemy.tengo"},
		{cleanScriptPath, "/abs/contour/prefabs/scripts/enemy.tengo", "scripts/enemy.tengo"},
	}
	for _, tc := range tests {
		if got := tc.fn(tc.in); got != tc.want {
			t.Fatalf("clean(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
