package testutil

import (
	"context"
	"net/http"
	"time"

	"github.com/dalemusser/mlhub/internal/domain/models"
	"github.com/go-chi/chi/v5"
)

// WithChiURLParam adds a chi URL parameter to the request context.
// Use this in handler tests that need to access chi.URLParam values.
func WithChiURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func ptrFloat(f float64) *float64 { return &f }

func date(s string) *time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return &t
}

// SampleResources returns the eight-record sample catalog, in catalog order.
// It matches the embedded seed catalog record for record.
func SampleResources() []models.Resource {
	return []models.Resource{
		{
			ID:          "1",
			Title:       "Introduction to Machine Learning - Complete Guide",
			Description: "Comprehensive PDF covering fundamentals of machine learning, algorithms, and practical applications with real-world examples.",
			Kind:        models.ResourceKindDocument,
			URL:         "https://example.com/ml-intro.pdf",
			Category:    "Fundamentals",
			Author:      "Dr. Andrew Ng",
			FileSize:    "2.3 MB",
			PublishedAt: date("2024-01-15"),
			Rating:      ptrFloat(4.8),
			Position:    0,
		},
		{
			ID:          "2",
			Title:       "Neural Networks Explained - Stanford CS229",
			Description: "Complete lecture series on neural networks and deep learning from Stanford University covering backpropagation, CNNs, and RNNs.",
			Kind:        models.ResourceKindVideo,
			URL:         "https://youtube.com/watch?v=example",
			Thumbnail:   "https://images.pexels.com/photos/8386440/pexels-photo-8386440.jpeg?auto=compress&cs=tinysrgb&w=800",
			Category:    "Deep Learning",
			Author:      "Stanford CS",
			Duration:    "1:24:30",
			Views:       "2.1M",
			Rating:      ptrFloat(4.9),
			Position:    1,
		},
		{
			ID:            "3",
			Title:         "Scikit-learn Documentation - Machine Learning Library",
			Description:   "Official documentation and tutorials for scikit-learn, the most popular ML library in Python with extensive examples.",
			Kind:          models.ResourceKindLink,
			URL:           "https://scikit-learn.org/stable/",
			Category:      "Tools & Libraries",
			Author:        "Scikit-learn Team",
			SourceWebsite: "scikit-learn.org",
			Rating:        ptrFloat(4.7),
			Position:      2,
		},
		{
			ID:          "4",
			Title:       "Linear Regression Analysis - Mathematical Foundations",
			Description: "Detailed mathematical explanation of linear regression with practical examples, code implementations, and statistical analysis.",
			Kind:        models.ResourceKindDocument,
			URL:         "https://example.com/linear-regression.pdf",
			Category:    "Regression",
			Author:      "MIT OpenCourseWare",
			FileSize:    "1.8 MB",
			PublishedAt: date("2024-02-10"),
			Rating:      ptrFloat(4.6),
			Position:    3,
		},
		{
			ID:          "5",
			Title:       "TensorFlow Tutorial for Beginners - Build Your First Neural Network",
			Description: "Step-by-step tutorial on building your first neural network with TensorFlow, including data preprocessing and model evaluation.",
			Kind:        models.ResourceKindVideo,
			URL:         "https://youtube.com/watch?v=example2",
			Thumbnail:   "https://images.pexels.com/photos/3861969/pexels-photo-3861969.jpeg?auto=compress&cs=tinysrgb&w=800",
			Category:    "Tools & Libraries",
			Author:      "Tech with Tim",
			Duration:    "45:12",
			Views:       "856K",
			Rating:      ptrFloat(4.5),
			Position:    4,
		},
		{
			ID:            "6",
			Title:         "Kaggle Machine Learning Competitions - Practice Platform",
			Description:   "Platform for machine learning competitions with datasets, community discussions, and real-world problem solving.",
			Kind:          models.ResourceKindLink,
			URL:           "https://kaggle.com/competitions",
			Category:      "Practice & Datasets",
			Author:        "Kaggle",
			SourceWebsite: "kaggle.com",
			Rating:        ptrFloat(4.8),
			Position:      5,
		},
		{
			ID:          "7",
			Title:       "K-Means Clustering Algorithm Explained",
			Description: "Comprehensive guide to K-Means clustering with mathematical derivations, implementation details, and practical applications.",
			Kind:        models.ResourceKindDocument,
			URL:         "https://example.com/kmeans-clustering.pdf",
			Category:    "Clustering",
			Author:      "Dr. Sarah Johnson",
			FileSize:    "3.1 MB",
			PublishedAt: date("2024-01-28"),
			Rating:      ptrFloat(4.4),
			Position:    6,
		},
		{
			ID:          "8",
			Title:       "Random Forest vs Decision Trees - Visual Explanation",
			Description: "Visual comparison of Random Forest and Decision Trees algorithms with interactive examples and performance metrics.",
			Kind:        models.ResourceKindVideo,
			URL:         "https://youtube.com/watch?v=example3",
			Thumbnail:   "https://images.pexels.com/photos/590022/pexels-photo-590022.jpg?auto=compress&cs=tinysrgb&w=800",
			Category:    "Classification",
			Author:      "ML Explained",
			Duration:    "28:45",
			Views:       "1.2M",
			Rating:      ptrFloat(4.7),
			Position:    7,
		},
	}
}

// SampleCategories returns the eight sample categories in display order.
func SampleCategories() []models.Category {
	return []models.Category{
		{ID: "fundamentals", Name: "Fundamentals", Description: "Basic concepts and introduction to ML", Icon: "🎯", ResourceCount: 45, Position: 0},
		{ID: "regression", Name: "Regression", Description: "Linear, polynomial, and advanced regression", Icon: "📈", ResourceCount: 32, Position: 1},
		{ID: "classification", Name: "Classification", Description: "Decision trees, SVM, and classification algorithms", Icon: "🏷️", ResourceCount: 38, Position: 2},
		{ID: "clustering", Name: "Clustering", Description: "K-means, hierarchical, and clustering methods", Icon: "🔗", ResourceCount: 24, Position: 3},
		{ID: "deep-learning", Name: "Deep Learning", Description: "Neural networks, CNNs, RNNs, and transformers", Icon: "🧠", ResourceCount: 56, Position: 4},
		{ID: "tools-libraries", Name: "Tools & Libraries", Description: "Python, R, TensorFlow, PyTorch, and more", Icon: "🛠️", ResourceCount: 41, Position: 5},
		{ID: "practice-datasets", Name: "Practice & Datasets", Description: "Kaggle, datasets, and hands-on projects", Icon: "📊", ResourceCount: 29, Position: 6},
		{ID: "research-papers", Name: "Research Papers", Description: "Latest research and academic publications", Icon: "📄", ResourceCount: 67, Position: 7},
	}
}

// IDs returns the IDs of rs in order.
func IDs(rs []models.Resource) []string {
	ids := make([]string, 0, len(rs))
	for _, r := range rs {
		ids = append(ids, r.ID)
	}
	return ids
}
