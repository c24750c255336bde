package prefabs

import (
	"image/color"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/milk9111/arena/ecs/component"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestLoadCatalog(t *testing.T) {
	cat, err := LoadCatalog()
	require.NoError(t, err)

	assert.Equal(t, component.DefaultTuning(), cat.Settings)
	require.NotNil(t, cat.Pursuit)
	assert.Equal(t, "pursuit", cat.Pursuit.Name)
	assert.Same(t, cat.Profiles["pursuit"], cat.Pursuit)

	for _, spawn := range cat.Arena.Creatures {
		assert.Contains(t, cat.Creatures, spawn.Prefab)
	}
	assert.Contains(t, cat.Weapons, cat.Player.Weapon)
	assert.False(t, cat.Creatures["deer"].Hostile)
	assert.Equal(t, "berserker.tengo", cat.Creatures["wolf"].Script)

	thrown, ok := cat.ThrownWeapon()
	require.True(t, ok)
	assert.Equal(t, "pebble", thrown.Name)
	assert.Equal(t, component.AttackThrown, thrown.AttackType)
}

func TestThrownWeaponMissing(t *testing.T) {
	var nilCat *Catalog
	_, ok := nilCat.ThrownWeapon()
	assert.False(t, ok)

	cat := &Catalog{Weapons: map[string]component.Weapon{}, Player: PlayerSpec{Thrown: "rock"}}
	_, ok = cat.ThrownWeapon()
	assert.False(t, ok)
}

func TestWeaponSpec(t *testing.T) {
	tests := []struct {
		name    string
		src     string
		want    component.Weapon
		wantErr bool
	}{
		{
			name: "defaults_to_slash",
			src:  "name: stick\ndamage: 1\n",
			want: component.Weapon{Name: "stick", Damage: 1, AttackType: component.AttackSlash},
		},
		{
			name: "effects_are_normalised",
			src:  "name: club\nattack_type: Blunt\neffects:\n  - {kind: STUN, value: 0.5}\n",
			want: component.Weapon{Name: "club", AttackType: component.AttackBlunt,
				Effects: []component.Effect{{Kind: component.EffectStun, Value: 0.5}}},
		},
		{
			name:    "unknown_effect",
			src:     "name: wand\neffects:\n  - {kind: poison, value: 1}\n",
			wantErr: true,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var spec WeaponSpec
			require.NoError(t, yaml.Unmarshal([]byte(tc.src), &spec))
			got, err := spec.Weapon()
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestYAMLColor(t *testing.T) {
	tests := []struct {
		in      string
		want    color.Color
		wantErr bool
	}{
		{in: `"#ff8000"`, want: color.NRGBA{R: 0xff, G: 0x80, A: 0xff}},
		{in: `"#10203040"`, want: color.NRGBA{R: 0x10, G: 0x20, B: 0x30, A: 0x40}},
		{in: `gold`, want: color.RGBA{R: 0xff, G: 0xd7, A: 0xff}},
		{in: `"#abc"`, wantErr: true},
		{in: `[1, 2]`, wantErr: true},
	}
	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			var c YAMLColor
			err := yaml.Unmarshal([]byte(tc.in), &c)
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, c.Color)
		})
	}

	var unset YAMLColor
	assert.Equal(t, color.White, unset.ColorOr(color.White))
}

func TestScriptPaths(t *testing.T) {
	assert.Equal(t, "scripts/berserker.tengo", cleanScriptPath("berserker.tengo"))
	assert.Equal(t, "scripts/berserker.tengo", cleanScriptPath("prefabs/scripts/berserker.tengo"))
	assert.Equal(t, "weapons.yaml", cleanPrefabPath("prefabs/weapons.yaml"))
	assert.Equal(t, "", cleanScriptPath(""))

	src, err := LoadScript("berserker.tengo")
	require.NoError(t, err)
	assert.Contains(t, string(src), "update")
}

func TestWatcherReportsChangedFiles(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWatcher(dir)
	require.NoError(t, err)
	defer w.Close()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, SettingsFile), []byte("player_speed: 1\n"), 0o644))

	select {
	case name := <-w.Events:
		assert.Equal(t, SettingsFile, name)
	case <-time.After(2 * time.Second):
		t.Fatal("no watcher event")
	}

	require.NoError(t, w.Close())
	assert.NoError(t, w.Close(), "close is idempotent")
}
