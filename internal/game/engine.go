// Package game holds the server-side state helpers for the verification
// mini-games: the shooter arithmetic shared with the client and the
// in-memory registry of active verification sessions.
package game

import (
	"math"
	"math/rand"
)

// Shooter playfield constants. The client mirrors these.
const (
	TargetScore  = 3
	MaxEnemies   = 3
	BulletSpeed  = 8.0
	SpawnRate    = 0.01
	CanvasWidth  = 350.0
	CanvasHeight = 200.0
	PlayerSize   = 30.0
	EnemySize    = 25.0
	BulletWidth  = 4.0
	BulletHeight = 8.0
)

// Rect is an axis-aligned rectangle.
type Rect struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
}

// Overlaps reports whether two rectangles intersect.
func (r Rect) Overlaps(other Rect) bool {
	return r.X < other.X+other.Width &&
		r.X+r.Width > other.X &&
		r.Y < other.Y+other.Height &&
		r.Y+r.Height > other.Y
}

// Bullet is a projectile travelling toward a fixed target point.
type Bullet struct {
	Rect
	TargetX   float64
	TargetY   float64
	VelocityX float64
	VelocityY float64
	Speed     float64
}

// NewBullet creates a bullet at the start position with its velocity aimed
// at the target. A degenerate zero-length trajectory yields a stationary
// bullet rather than NaN velocities.
func NewBullet(startX, startY, targetX, targetY, speed float64) Bullet {
	dx := targetX - startX
	dy := targetY - startY
	distance := math.Sqrt(dx*dx + dy*dy)

	b := Bullet{
		Rect: Rect{
			X:      startX,
			Y:      startY,
			Width:  BulletWidth,
			Height: BulletHeight,
		},
		TargetX: targetX,
		TargetY: targetY,
		Speed:   speed,
	}
	if distance > 0 {
		b.VelocityX = dx / distance * speed
		b.VelocityY = dy / distance * speed
	}
	return b
}

// Advance moves the bullet one tick along its trajectory.
func (b *Bullet) Advance() {
	b.X += b.VelocityX
	b.Y += b.VelocityY
}

// OutOfBounds reports whether the bullet has left the playfield.
func (b Bullet) OutOfBounds(canvasWidth, canvasHeight float64) bool {
	return b.X < 0 || b.X > canvasWidth || b.Y < 0 || b.Y > canvasHeight
}

// Enemy is a shootable target.
type Enemy struct {
	Rect
	Health int
}

// SpawnEnemy places a new enemy at a random position in the upper part of
// the playfield.
func SpawnEnemy(rng *rand.Rand, canvasWidth, canvasHeight float64) Enemy {
	x := rng.Float64() * (canvasWidth - EnemySize)
	y := rng.Float64() * (canvasHeight*0.6 - EnemySize)
	return Enemy{
		Rect: Rect{
			X:      x,
			Y:      y + 20, // keep a margin from the very top
			Width:  EnemySize,
			Height: EnemySize,
		},
		Health: 1,
	}
}

// ShouldSpawn gates enemy spawning on the population cap and spawn rate.
func ShouldSpawn(rng *rand.Rand, enemyCount, maxEnemies int, spawnRate float64) bool {
	return enemyCount < maxEnemies && rng.Float64() < spawnRate
}

// ProcessCollisions resolves bullet-enemy hits. It returns the hit count
// along with the surviving bullets and enemies.
func ProcessCollisions(bullets []Bullet, enemies []Enemy) (hits int, remainingBullets []Bullet, remainingEnemies []Enemy) {
	remainingEnemies = append(remainingEnemies, enemies...)
	for _, bullet := range bullets {
		hit := false
		for i, enemy := range remainingEnemies {
			if bullet.Overlaps(enemy.Rect) {
				remainingEnemies = append(remainingEnemies[:i], remainingEnemies[i+1:]...)
				hits++
				hit = true
				break
			}
		}
		if !hit {
			remainingBullets = append(remainingBullets, bullet)
		}
	}
	return hits, remainingBullets, remainingEnemies
}
