package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/palemoky/maria/internal/agent"
	"github.com/palemoky/maria/internal/arena"
	"github.com/palemoky/maria/internal/config"
	"github.com/palemoky/maria/internal/game"
	"github.com/palemoky/maria/internal/game/player"
	"github.com/palemoky/maria/internal/game/round"
	"github.com/palemoky/maria/internal/logger"
	"github.com/palemoky/maria/internal/storage"
	"github.com/palemoky/maria/internal/ui/view"
)

func main() {
	configPath := flag.String("config", "configs/config.yaml", "配置文件路径")
	games := flag.Int("games", 0, "评测对局数，覆盖配置")
	seed := flag.Uint64("seed", 0, "随机种子，覆盖配置")
	agents := flag.String("agents", "", "四家策略，逗号分隔，如 random,random,random,lowcard")
	verbose := flag.Bool("verbose", false, "输出调试日志")
	demo := flag.Bool("demo", false, "打印一场对局的局面与每局结算")
	rules := flag.Bool("rules", false, "打印游戏规则")
	replay := flag.String("replay", "", "从 Redis 载入对局并复盘校验")
	recent := flag.Int("recent", 0, "列出最近保存的 N 场对局（需要 Redis）")
	remove := flag.String("delete", "", "从 Redis 删除对局")
	top := flag.Int("leaderboard", 0, "打印排行榜前 N 名（需要 Redis）")
	flag.Parse()

	if *rules {
		fmt.Println(view.RenderGameRules())
		return
	}

	// 加载配置
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Printf("加载配置文件失败，使用默认配置: %v", err)
		cfg = config.Default()
	}
	if *games > 0 {
		cfg.Game.Games = *games
	}
	if *seed > 0 {
		cfg.Game.Seed = *seed
	}
	if *agents != "" {
		cfg.Agents = strings.Split(*agents, ",")
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("配置无效: %v", err)
	}
	if cfg.Game.Seed == 0 {
		cfg.Game.Seed = uint64(time.Now().UnixNano())
	}

	if cfg.Log.Enabled {
		if err := logger.Init(); err != nil {
			log.Printf("初始化日志失败: %v", err)
		} else {
			defer logger.Close()
		}
	}
	logger.SetDebug(cfg.Log.Debug || *verbose)
	defer func() {
		if r := recover(); r != nil {
			logger.LogPanic(r)
			panic(r)
		}
	}()

	// 优雅关闭
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var store *storage.Store
	if cfg.Redis.Enabled {
		client, err := storage.Connect(ctx, cfg.Redis)
		if err != nil {
			logger.LogError("redis unavailable: %v", err)
			fmt.Fprintf(os.Stderr, "Redis 不可用，不保存对局: %v\n", err)
		} else {
			defer func() { _ = client.Close() }()
			store = storage.New(client)
		}
	}

	if (*replay != "" || *recent > 0 || *remove != "") && store == nil {
		log.Fatal("复盘与对局管理需要启用 Redis")
	}
	if *remove != "" {
		if err := store.DeleteMatch(ctx, *remove); err != nil {
			log.Fatalf("删除对局失败: %v", err)
		}
		fmt.Printf("已删除对局 %s\n", *remove)
		return
	}
	if *recent > 0 {
		ids, err := store.RecentMatchIDs(ctx, *recent)
		if err != nil {
			log.Fatalf("获取最近对局失败: %v", err)
		}
		for _, id := range ids {
			fmt.Println(id)
		}
		return
	}
	if *replay != "" {
		if err := runReplay(ctx, store, *replay); err != nil {
			log.Fatalf("复盘失败: %v", err)
		}
		return
	}

	players, err := newAgents(cfg)
	if err != nil {
		log.Fatalf("创建策略失败: %v", err)
	}

	if *demo {
		if err := runDemo(players, cfg.Game.Seed); err != nil {
			log.Fatalf("演示失败: %v", err)
		}
		return
	}

	var recorder arena.Recorder
	if store != nil {
		recorder = store
	}
	a, err := arena.New(players, recorder, arena.Options{
		Games:         cfg.Game.Games,
		Seed:          cfg.Game.Seed,
		AllowStepBack: cfg.Game.AllowStepBack,
	})
	if err != nil {
		log.Fatalf("创建评测失败: %v", err)
	}

	logger.LogInfo("arena starting: games=%d seed=%d agents=%v", cfg.Game.Games, cfg.Game.Seed, cfg.Agents)
	result, err := a.Run(ctx)
	if err != nil {
		logger.LogError("arena stopped: %v", err)
		fmt.Fprintf(os.Stderr, "评测中断: %v\n", err)
	}
	if result != nil {
		fmt.Println(view.RenderResult(result))
	}

	if store != nil && *top > 0 {
		entries, err := store.GetLeaderboard(ctx, 0, *top)
		if err != nil {
			log.Fatalf("获取排行榜失败: %v", err)
		}
		fmt.Println(view.RenderLeaderboard(entries))
	}
}

// newAgents 每个座位使用独立的随机源
func newAgents(cfg *config.Config) ([]agent.Agent, error) {
	players := make([]agent.Agent, len(cfg.Agents))
	for i, name := range cfg.Agents {
		a, err := agent.New(name, game.NewRand(cfg.Game.Seed+uint64(i)+1))
		if err != nil {
			return nil, err
		}
		players[i] = a
	}
	return players, nil
}

func runDemo(players []agent.Agent, seed uint64) error {
	g := game.New(game.Options{Seed: seed})
	_, seat, err := g.Start()
	if err != nil {
		return err
	}

	shown := 0
	for !g.IsTerminal() {
		state, err := g.State(seat)
		if err != nil {
			return err
		}
		act, err := players[seat].Step(state)
		if err != nil {
			return err
		}

		roundNumber := g.RoundNumber()
		phase := g.Round().Phase()
		if _, seat, err = g.Apply(act); err != nil {
			return err
		}

		// 传牌结束后打印一次完整局面
		if phase == round.PhaseTrading && g.Round().Phase() == round.PhasePlaying && shown < roundNumber {
			perfect, err := g.PerfectInformation()
			if err != nil {
				return err
			}
			fmt.Println(view.RenderScene(perfect))
			shown = roundNumber
		}
		if g.RoundNumber() != roundNumber || g.IsTerminal() {
			results := g.Results()
			fmt.Println(view.RenderRoundResult(results[len(results)-1]))
		}
	}

	results := g.Results()
	fmt.Println(view.RenderLedger(results[len(results)-1].Moves))
	return nil
}

func runReplay(ctx context.Context, store *storage.Store, id string) error {
	match, err := arena.Replay(ctx, store, id)
	if err != nil {
		return err
	}
	fmt.Printf("对局 %s 校验通过: seed=%d agents=%v\n", match.ID, match.Seed, match.Agents)
	for _, r := range match.Rounds {
		moves, err := r.Moves()
		if err != nil {
			return err
		}
		result := game.RoundResult{
			Number:     r.Number,
			DealerSeat: player.Seat(r.DealerSeat),
			Moves:      moves,
			Points:     r.Points,
			Scores:     r.Scores,
		}
		for _, seat := range r.ShotMoon {
			result.ShotMoon = append(result.ShotMoon, player.Seat(seat))
		}
		fmt.Println(view.RenderRoundResult(result))
	}
	return nil
}
