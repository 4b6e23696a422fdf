// database/seed.go - Catalog Seeding
package database

import (
	"log"

	"codebrincando/models"
)

// Seed inserts the starter challenges, the intro explanation cards and a
// placeholder test user. Each table is only touched when it is empty, so
// calling Seed on every startup is safe.
func Seed() {
	db := GetDB()

	var count int64

	db.Model(&models.Challenge{}).Count(&count)
	if count == 0 {
		if err := db.Create(seedChallenges()).Error; err != nil {
			log.Fatalf("❌ Failed to seed challenges: %v", err)
		}
		log.Println("🌱 Seeded starter challenges")
	}

	db.Model(&models.Explanation{}).Count(&count)
	if count == 0 {
		if err := db.Create(seedExplanations()).Error; err != nil {
			log.Fatalf("❌ Failed to seed explanations: %v", err)
		}
		log.Println("🌱 Seeded explanation cards")
	}

	db.Model(&models.User{}).Count(&count)
	if count == 0 {
		age := 8
		if err := db.Create(&models.User{Name: "Aluno Teste", Age: &age}).Error; err != nil {
			log.Fatalf("❌ Failed to seed test user: %v", err)
		}
		log.Println("🌱 Seeded test user")
	}
}

func seedChallenges() []models.Challenge {
	return []models.Challenge{
		{
			Name:     "O Título Sumiu!",
			Language: "html",
			Instruction: `Para um título grandão, usamos a tag &lt;h1&gt;. Toda tag que é aberta precisa ser fechada com uma barra, assim: &lt;/h1&gt;. <br><br> DESAFIO <br> Nosso mascote queria escrever um título grande com a frase "Olá, Mundo!", o código dele foi: <br><br> &lt;titul0&gt;Olá, Mundo!&lt;/titul0&gt;  <br><br> O código do nosso mascote não está aparecendo, você consegue nos ajudar?`,
			BuggyCode:    "<titul0>Olá, Mundo!</titul0>",
			ExpectedCode: "<h1>Olá, Mundo!</h1>",
		},
		{
			Name:     "Parágrafo Tímido",
			Language: "html",
			Instruction: `A tag de parágrafo é a &lt;p&gt; e também precisa ser aberta e fechada para funcionar! <br><br> DESAFIO <br> O parágrafo do nosso mascote não foi fechado e ficou assim: <br><br> &lt;p&gt;Meu animal favorito é o golfinho!. <br><br> Você consegue nos ajudar?`,
			BuggyCode:    "<p>Meu animal favorito é o golfinho!",
			ExpectedCode: "<p>Meu animal favorito é o golfinho!</p>",
		},
		{
			Name:     "O Site não Pinta!",
			Language: "css",
			Instruction: `Para mudar a cor de fundo, a ordem que devemos dar ao computador é "background-color".<br> Se usarmos só "color", ele pinta o texto!<br><br> DESAFIO <br> O código do nosso mascote foi:<br><br>body { color: lightblue; } <br><br> O resultado desse codigo foi texto ficar azul. <br> Você consegue nos ajudar de novo e escrever um código que pinte apenas o fundo (background) de azul?`,
			BuggyCode:    "body { color: lightblue; }",
			ExpectedCode: "body { background-color: lightblue; }",
		},
	}
}

func seedExplanations() []models.Explanation {
	code := func(s string) *string { return &s }

	return []models.Explanation{
		{
			Kind:  models.ExplanationKindIntro,
			Title: "Ei, você, você mesmo!!",
			Body:  "Vamos aprender um pouco de Engenharia de Software?\nJuro que é muito mais simples do que parece!\n\nTeremos 5 conceitos para começar...",
		},
		{
			Kind:  models.ExplanationKindConcept,
			Title: "1. O que é um site?",
			Body:  "Um site é como uma casinha que vive dentro do computador! Quando você entra em um site, é como visitar essa casa. Ela pode ter portas (links), quadros na parede (imagens), recados colados na geladeira (textos) e até botões que fazem coisas acontecerem (tipo uma campainha que toca)!",
		},
		{
			Kind:       models.ExplanationKindConcept,
			Title:      "2. O que é HTML? (a estrutura)",
			Body:       "O HTML é como o esqueleto da casa. Ele diz onde vai o título, a imagem, o botão, a lista… É tipo montar uma lancheira com divisórias: um espaço pro sanduíche, outro pro suco, outro pra sobremesa.",
			SampleCode: code("<h1>Olá, mundo!</h1>\n<p>Este é o meu primeiro site!</p>"),
		},
		{
			Kind:       models.ExplanationKindConcept,
			Title:      "3. O que é CSS? (o visual)",
			Body:       "CSS é o que deixa o site bonito! Ele pinta as paredes, escolhe a fonte do texto, muda o tamanho das coisas e até coloca brilhos e animações. É como colocar roupas e maquiagem no seu personagem!",
			SampleCode: code("p {\n  color: blue;\n  font-size: 20px;\n}"),
		},
		{
			Kind:       models.ExplanationKindConcept,
			Title:      "4. O que é JavaScript? (o cérebro)",
			Body:       "O JavaScript é o que dá vida ao site! Ele faz as coisas se mexerem, responderem quando você clica, mudarem sozinhas. É como o cérebro de um robô que reage quando você fala com ele.",
			SampleCode: code(`alert("Bem-vindo ao meu site!");`),
		},
		{
			Kind:  models.ExplanationKindConcept,
			Title: "5. O que é um Bug?",
			Body:  "Um bug é quando o código não funciona direitinho. Pode ser porque esquecemos um pedacinho, escrevemos uma palavrinha errada, ou colocamos tudo na ordem errada. É como montar um LEGO e perceber que a roda está do lado errado.",
		},
	}
}
