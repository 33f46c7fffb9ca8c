package main

import (
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/gorilla/sessions"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/s/elearning/internal/auth"
	"github.com/s/elearning/internal/database"
	"github.com/s/elearning/internal/handlers"
	"github.com/s/elearning/internal/router"
)

func main() {
	// ---------------------------
	// 0. Загрузка переменных окружения
	// ---------------------------
	err := godotenv.Load()
	if err != nil {
		log.Println("Предупреждение: Не удалось загрузить файл .env. Используются системные переменные.")
	}

	// ---------------------------
	// 1. Подключаем GORM (База данных)
	// ---------------------------
	db, err := database.Connect()
	if err != nil {
		log.Fatal("Ошибка подключения к БД:", err)
	}

	// ---------------------------
	// 2. Делаем миграции
	// ---------------------------
	if err := database.AutoMigrate(db); err != nil {
		log.Fatal("Ошибка миграции:", err)
	}

	// ---------------------------
	// 3. Сиды (роли)
	// ---------------------------
	if err := database.Seed(db); err != nil {
		log.Println("Ошибка сидов (возможно, данные уже есть):", err)
	}

	// ---------------------------
	// 4. Настраиваем Google OAuth
	// ---------------------------
	clientId := os.Getenv("GOOGLE_CLIENT_ID")
	clientSecret := os.Getenv("GOOGLE_CLIENT_SECRET")
	redirectURL := os.Getenv("GOOGLE_REDIRECT_URL")

	if clientId == "" || clientSecret == "" || redirectURL == "" {
		log.Fatal("Ошибка: Переменные GOOGLE_... не установлены в .env")
	}

	oauthConfig := auth.InitGoogleOAuthConfig(clientId, clientSecret, redirectURL)

	// ---------------------------
	// 5. Настройка сессий
	// ---------------------------
	sessionKey := os.Getenv("SESSION_KEY")
	if sessionKey == "" {
		sessionKey = "super-secret-default-key" // Только для разработки!
		log.Println("Внимание: SESSION_KEY не задан, используется дефолтный.")
	}
	store := sessions.NewCookieStore([]byte(sessionKey))
	// Настройки безопасности куки
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   86400 * 7,
		HttpOnly: true,
		Secure:   false, // Поставьте true, если используете HTTPS
	}

	// ---------------------------
	// 6. Логгер
	// ---------------------------
	var zapLogger *zap.Logger
	if os.Getenv("APP_ENV") == "prod" {
		zapLogger, err = zap.NewProduction()
	} else {
		zapLogger, err = zap.NewDevelopment()
	}
	if err != nil {
		log.Fatal("Ошибка инициализации логгера:", err)
	}
	defer zapLogger.Sync()

	// ---------------------------
	// 7. Инициализация Хендлеров и Роутинг
	// ---------------------------
	h := handlers.NewHandler(db, store, oauthConfig, zapLogger.Sugar())
	r := router.New(h)

	// ---------------------------
	// 8. Запуск сервера
	// ---------------------------
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	corsHandler := corsMiddleware(r)
	fmt.Printf("Сервер запущен: http://localhost:%s\n", port)
	log.Fatal(http.ListenAndServe(":"+port, corsHandler))
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Разрешаем запросы с любого источника (для разработки)
		// В продакшене лучше ставить конкретный домен
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}
