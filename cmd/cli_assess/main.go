package main

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"behavior-insights/internal/config"
	"behavior-insights/internal/db"
	"behavior-insights/internal/domain"
	"behavior-insights/internal/repository"
	"behavior-insights/internal/service"
)

const cliUserID = "cli-operator"

func main() {
	ctx := context.Background()
	reader := bufio.NewReader(os.Stdin)

	_ = godotenv.Load()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal(err)
	}

	logger := zap.NewExample()
	defer logger.Sync()

	var (
		assessmentRepo repository.AssessmentRepository      = repository.NewMemoryAssessmentRepository()
		snapshotRepo   repository.ProfileSnapshotRepository = repository.NewMemoryProfileSnapshotRepository()
	)
	if cfg.DatabaseURL != "" {
		pool, err := db.NewPool(ctx, cfg)
		if err != nil {
			log.Fatal(err)
		}
		defer pool.Close()
		if err := db.EnsureSchema(ctx, pool); err != nil {
			log.Fatal(err)
		}
		assessmentRepo = repository.NewPgAssessmentRepository(pool)
		snapshotRepo = repository.NewPgProfileSnapshotRepository(pool)
	}

	cache := service.NewMemoryAssessmentCache(time.Duration(cfg.CacheTTLMinutes) * time.Minute)
	recorder := service.NewAssessmentRecorder(service.NewAssessmentService(), assessmentRepo, snapshotRepo, cache, logger)

	var loaded *domain.EnhancedBehavioralProfile
	for {
		fmt.Println("\n===== Analista Conductual =====")
		fmt.Println("[1] Conversar (perfil en vivo)")
		fmt.Println("[2] Cargar perfil enriquecido (JSON) y evaluar")
		fmt.Println("[3] Insights por categoria")
		fmt.Println("[4] Ultima evaluacion de un usuario")
		fmt.Println("[5] Salir")
		fmt.Print("Selecciona una opcion: ")

		line, _ := reader.ReadString('\n')
		switch strings.TrimSpace(line) {
		case "1":
			if err := liveProfileFlow(ctx, reader, recorder); err != nil {
				fmt.Printf("Error en conversacion: %v\n", err)
			}
		case "2":
			profile, err := assessFileFlow(ctx, reader, recorder)
			if err != nil {
				fmt.Printf("Error evaluando perfil: %v\n", err)
				continue
			}
			loaded = profile
		case "3":
			if loaded == nil {
				fmt.Println("Primero carga un perfil con la opcion 2.")
				continue
			}
			category := readLine(reader, "Categoria (engagement/monetization/retention/messaging): ")
			printList("Insights", service.GetInsightsByCategory(*loaded, category))
		case "4":
			userID := readLine(reader, "ID de usuario: ")
			a, err := recorder.LatestAssessment(ctx, userID)
			if err != nil {
				fmt.Printf("Sin evaluacion: %v\n", err)
				continue
			}
			printAssessment(a)
		case "5":
			os.Exit(0)
		default:
			fmt.Println("Opcion invalida.")
		}
	}
}

// liveProfileFlow acumula mensajes del usuario y recalcula el perfil en cada turno.
func liveProfileFlow(ctx context.Context, reader *bufio.Reader, recorder *service.AssessmentRecorder) error {
	var signals domain.RawSignals
	fmt.Println("---- Modo Conversacion (escribe 'salir' para terminar) ----")
	for {
		fmt.Print("Tu > ")
		text, err := reader.ReadString('\n')
		if err != nil {
			return fmt.Errorf("leer input: %w", err)
		}
		text = strings.TrimSpace(text)
		if strings.EqualFold(text, "salir") {
			return nil
		}
		if text == "" {
			continue
		}
		now := time.Now().UTC()
		signals.MessageHistory = append(signals.MessageHistory, domain.MessageRecord{
			Content:   text,
			IsUser:    true,
			Timestamp: &now,
		})

		profile, err := recorder.RecordBehavioralProfile(ctx, cliUserID, signals)
		if err != nil {
			return err
		}
		fmt.Printf("[fase=%s %d%% | confianza=%d deseo=%d engagement=%d | sentido=%s]\n",
			profile.CurrentInfluencePhase,
			profile.InfluencePhaseProgress,
			profile.TrustScore,
			profile.DesireScore,
			profile.EngagementScore,
			profile.PrimarySensoryPreference,
		)
		fmt.Printf("Sugerencia (%s): %s\n", profile.SuggestedApproach.Technique, profile.SuggestedApproach.LanguagePattern)
	}
}

func assessFileFlow(ctx context.Context, reader *bufio.Reader, recorder *service.AssessmentRecorder) (*domain.EnhancedBehavioralProfile, error) {
	path := readLine(reader, "Ruta del archivo JSON: ")
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("leer archivo: %w", err)
	}
	var profile domain.EnhancedBehavioralProfile
	if err := json.Unmarshal(raw, &profile); err != nil {
		return nil, fmt.Errorf("decodificar perfil: %w", err)
	}
	if profile.UserID == "" {
		profile.UserID = cliUserID
	}

	a, err := recorder.RecordAssessment(ctx, profile)
	if err != nil {
		return nil, err
	}
	printAssessment(a)
	printList("Prioridades", service.GetPriorityInsights(profile))
	return &profile, nil
}

func printAssessment(a domain.Assessment) {
	fmt.Printf("\nEvaluacion %s (usuario %s)\n", a.AssessmentID, a.UserID)
	fmt.Printf("Engagement=%d Afinidad=%d Monetizacion=%d Retencion=%d\n",
		a.Scores.EngagementPotential,
		a.Scores.ContentAffinity,
		a.Scores.MonetizationPropensity,
		a.Scores.RetentionLikelihood,
	)
	fmt.Println(a.InsightSummary)
	printList("Recomendaciones", a.Recommendations)
}

func printList(title string, items []string) {
	fmt.Printf("%s:\n", title)
	if len(items) == 0 {
		fmt.Println("  (ninguna)")
		return
	}
	for i, item := range items {
		fmt.Printf("  %d. %s\n", i+1, item)
	}
}

func readLine(reader *bufio.Reader, prompt string) string {
	fmt.Print(prompt)
	line, _ := reader.ReadString('\n')
	return strings.TrimSpace(line)
}
