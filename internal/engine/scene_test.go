package engine

import "testing"

func TestSceneAddGameObject(t *testing.T) {
	scene := NewScene("Test")
	obj := NewGameObject("Player")

	scene.AddGameObject(obj)

	if len(scene.GameObjects) != 1 {
		t.Errorf("Expected 1 GameObject, got %d", len(scene.GameObjects))
	}

	if scene.GameObjects[0] != obj {
		t.Error("GameObject not added to scene")
	}

	if obj.Scene != scene {
		t.Error("GameObject.Scene not set")
	}
}

func TestSceneRemoveGameObject(t *testing.T) {
	scene := NewScene("Test")
	obj1 := NewGameObject("Floor")
	obj2 := NewGameObject("Wall")

	scene.AddGameObject(obj1)
	scene.AddGameObject(obj2)

	scene.RemoveGameObject(obj1)

	if len(scene.GameObjects) != 1 {
		t.Errorf("Expected 1 GameObject after removal, got %d", len(scene.GameObjects))
	}

	if scene.GameObjects[0] != obj2 {
		t.Error("Wrong GameObject removed")
	}

	if obj1.Scene != nil {
		t.Error("Removed GameObject should have nil Scene")
	}

	if scene.Contains(obj1) {
		t.Error("Contains should be false after removal")
	}
}

func TestSceneRemoveMissingIsNoop(t *testing.T) {
	scene := NewScene("Test")
	obj := NewGameObject("Floor")
	scene.AddGameObject(obj)

	scene.RemoveGameObject(NewGameObject("Stranger"))

	if len(scene.GameObjects) != 1 {
		t.Errorf("Expected 1 GameObject, got %d", len(scene.GameObjects))
	}
}

func TestSceneFindByName(t *testing.T) {
	scene := NewScene("Test")
	obj := NewGameObject("Key")

	scene.AddGameObject(obj)

	if scene.FindByName("Key") != obj {
		t.Error("FindByName failed")
	}

	if scene.FindByName("DoesNotExist") != nil {
		t.Error("FindByName should return nil for non-existent name")
	}
}
