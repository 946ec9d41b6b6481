// cmd/sim/run.go
package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	redis "github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"

	"go-tower-sim/internal/app"
	"go-tower-sim/internal/config"
	"go-tower-sim/internal/defs"
	"go-tower-sim/internal/save"
)

var (
	runMapID   string
	runDelta   float64
	runMaxTime float64
	runLoop    bool
	runSlot    string
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run a headless simulation",
	Long:  `Run the simulation with a fixed time step until the waves end or the player dies.`,
	RunE:  runSimulation,
}

func init() {
	runCmd.Flags().StringVar(&runMapID, "map", "", "map id (default: first map)")
	runCmd.Flags().Float64Var(&runDelta, "dt", 1.0/60.0, "fixed time step in seconds")
	runCmd.Flags().Float64Var(&runMaxTime, "max-time", 600, "simulated time limit in seconds")
	runCmd.Flags().BoolVar(&runLoop, "loop", false, "loop waves endlessly")
	runCmd.Flags().StringVar(&runSlot, "slot", "", `save slot id; "new" generates one`)
}

func runSimulation(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		log.Println("Received shutdown signal, stopping...")
		cancel()
	}()

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if runLoop {
		cfg.Game.LoopWaves = true
	}

	if err := loadLibraries(cfg); err != nil {
		return err
	}
	maps, err := defs.LoadMapDefinitions(cfg.Data.MapsDir)
	if err != nil {
		return err
	}
	mapDef, err := pickMap(maps, runMapID)
	if err != nil {
		return err
	}
	blueprints, err := defs.LoadWaveBlueprints(mapDef.ID, cfg.Data.WavesDir)
	if err != nil {
		return err
	}

	game, err := app.NewGame(mapDef, blueprints, defs.DefaultDifficultyCurve(), cfg.Game)
	if err != nil {
		return err
	}

	var store *save.RedisStore
	if runSlot != "" {
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer client.Close()

		store, err = save.NewRedisStore(&save.Config{Client: client})
		if err != nil {
			return err
		}

		if runSlot == "new" {
			runSlot = save.NewSlotID()
			log.Printf("Created save slot %s", runSlot)
		} else if err := resumeProgress(ctx, store, game, mapDef.ID); err != nil {
			return err
		}
	}

	log.Printf("Running map %q (%d waves, dt=%.4fs)", mapDef.ID, game.WaveSystem.TotalWaves(), runDelta)

	deltaTime := runDelta
	if deltaTime > config.MaxDeltaTime {
		deltaTime = config.MaxDeltaTime
	}

	for game.GameTime() < runMaxTime {
		if ctx.Err() != nil {
			break
		}

		if !game.WaveSystem.WaveInProgress() {
			if !game.StartNextWave() {
				if len(game.ECS.Enemies) == 0 {
					break
				}
			}
		}

		game.Update(deltaTime)

		if !game.ECS.Player.IsAlive() {
			break
		}
	}

	if store != nil {
		if err := store.Save(ctx, mapDef.ID, runSlot, game.SerializeProgress()); err != nil {
			log.Printf("Error: failed to save progress: %v", err)
		} else {
			log.Printf("Saved progress to slot %s", runSlot)
		}
	}

	player := game.ECS.Player
	fmt.Printf("Simulated %.1fs: wave %d/%d, money %d, lives %d\n",
		game.GameTime(), player.CurrentWave, game.WaveSystem.TotalWaves(), player.Money, player.Lives)
	if !player.IsAlive() {
		fmt.Println("Result: defeat")
	} else if game.WaveSystem.IsFinished() {
		fmt.Println("Result: victory")
	}
	return nil
}

// resumeProgress подхватывает сохранение из слота, если оно есть.
func resumeProgress(ctx context.Context, store *save.RedisStore, game *app.Game, mapID string) error {
	progress, err := store.Load(ctx, mapID, runSlot, game.WaveSystem.TotalWaves())
	if errors.Is(err, save.ErrNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	if err := game.RestoreProgress(progress); err != nil {
		return err
	}
	log.Printf("Resumed slot %s at wave index %d", runSlot, progress.CurrentIndex)
	return nil
}
