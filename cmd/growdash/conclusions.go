package main

// conclusionsMarkdown is the research-conclusions narrative shown on the
// third tab. Kept verbatim from the study writeup, in Korean like the rest
// of the domain labels.
const conclusionsMarkdown = `### 연구 결론

본 연구는 학교별로 상이한 환경 조건에서 재배된 나도수영의 생육 데이터를 분석하여,
환경 요인과 생중량 간의 관계를 정량적으로 평가하고 최적 생육 조건을 도출하고자 하였다.
다만 이러한 값들은 시간에 따라 변동하는 센서 측정값에 기반한 결과로,
실험 설계에서 설정한 학교별 EC 조건 그 자체를 의미하지는 않는다.

분석 결과, **전기전도도(EC)** 는 생중량에 가장 뚜렷한 영향을 미치는 요인으로 나타났으며,
특히 EC 2.0 조건에서 평균 생중량이 높고 개체 간 편차가 작아 가장 안정적인 생육을 보였다.

**pH** 의 경우 중성에 가까운 조건에서 생중량의 평균값이 높고 변동성이 작았으며,
산성 또는 염기성으로 치우칠수록 생육 안정성이 저하되는 경향이 확인되었다.

**습도** 는 높을수록 생육이 향상된다고 단정할 수 없었으며,
과도한 고습 조건에서는 오히려 생중량의 분산이 커져 생육이 불안정해지는 양상이 나타났다.

**온도** 는 본 연구 범위 내에서는 생중량과의 직접적인 상관성이 비교적 약했으나,
급격한 변화가 발생할 경우 생육에 부정적인 영향을 미칠 가능성을 시사한다.

### 연구의 의의 및 한계

본 연구는 여러 학교에서 수집된 실제 데이터를 기반으로 환경 요인의 영향을 비교 분석했다는
점에서 의의가 있다. 다만 학교별 환경 조건이 완전히 통제되지 않았으며, 장기적인 생육 변화에
대한 분석이 이루어지지 못한 한계가 존재한다. 향후 연구에서는 환경 조건을 보다 정밀하게
제어한 실험 설계를 통해 결과를 보완할 필요가 있다.
`
